package assistant

import (
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantKind      OutcomeKind
		wantProductId string
		wantInfo      string
		wantMessage   string
	}{
		{
			name:          "navigate",
			text:          "NAVIGATE_TO_PRODUCT:pizza1",
			wantKind:      OutcomeNavigate,
			wantProductId: "pizza1",
		},
		{
			name:          "navigate with surrounding whitespace",
			text:          "  NAVIGATE_TO_PRODUCT:burger2\n",
			wantKind:      OutcomeNavigate,
			wantProductId: "burger2",
		},
		{
			name:          "navigate with trailing chatter after id",
			text:          "NAVIGATE_TO_PRODUCT:pizza1:enjoy",
			wantKind:      OutcomeNavigate,
			wantProductId: "pizza1",
		},
		{
			name:        "navigate with empty id degrades to message",
			text:        "NAVIGATE_TO_PRODUCT:",
			wantKind:    OutcomePlainMessage,
			wantMessage: "NAVIGATE_TO_PRODUCT:",
		},
		{
			name:          "info and navigate",
			text:          "INFO_AND_NAVIGATE:pizza1:Our Margherita Pizza is a classic.",
			wantKind:      OutcomeNavigateWithInfo,
			wantProductId: "pizza1",
			wantInfo:      "Our Margherita Pizza is a classic.",
		},
		{
			name:          "info text keeps its own colons",
			text:          "INFO_AND_NAVIGATE:pizza1:Heads up: this one is spicy. Price: $12.99",
			wantKind:      OutcomeNavigateWithInfo,
			wantProductId: "pizza1",
			wantInfo:      "Heads up: this one is spicy. Price: $12.99",
		},
		{
			name:        "info and navigate without info degrades to message",
			text:        "INFO_AND_NAVIGATE:pizza1",
			wantKind:    OutcomePlainMessage,
			wantMessage: "INFO_AND_NAVIGATE:pizza1",
		},
		{
			name:        "info and navigate with empty id degrades to message",
			text:        "INFO_AND_NAVIGATE::some info",
			wantKind:    OutcomePlainMessage,
			wantMessage: "INFO_AND_NAVIGATE::some info",
		},
		{
			name:        "plain message passes through verbatim",
			text:        "Our Margherita Pizza costs $12.99.",
			wantKind:    OutcomePlainMessage,
			wantMessage: "Our Margherita Pizza costs $12.99.",
		},
		{
			name:        "empty text",
			text:        "",
			wantKind:    OutcomePlainMessage,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.text)

			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.ProductId != tt.wantProductId {
				t.Errorf("ProductId = %q, want %q", got.ProductId, tt.wantProductId)
			}
			if got.Info != tt.wantInfo {
				t.Errorf("Info = %q, want %q", got.Info, tt.wantInfo)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}
