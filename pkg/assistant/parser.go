package assistant

import "strings"

// Prefix constants for the assistant's structured response protocol.
const (
	PrefixNavigate     = "NAVIGATE_TO_PRODUCT:"
	PrefixInfoNavigate = "INFO_AND_NAVIGATE:"
)

// OutcomeKind is the decoded shape of a completion-service response.
type OutcomeKind string

const (
	OutcomePlainMessage     OutcomeKind = "message"
	OutcomeNavigate         OutcomeKind = "navigation"
	OutcomeNavigateWithInfo OutcomeKind = "info_and_navigate"
)

// Outcome is the tagged variant produced by decoding the raw completion text
// once at the boundary. Raw prefixed strings never travel further inward.
type Outcome struct {
	Kind      OutcomeKind
	ProductId string // set for Navigate and NavigateWithInfo
	Info      string // set for NavigateWithInfo
	Message   string // set for PlainMessage, carries the original text
}

// ParseResponse decodes the completion text into an Outcome.
//
// Recognized shapes:
//   - NAVIGATE_TO_PRODUCT:<id>
//   - INFO_AND_NAVIGATE:<id>:<info>  (info may itself contain colons)
//   - anything else → plain message, text passed through verbatim
//
// Malformed prefixed responses (empty id, missing info) degrade to a plain
// message carrying the original text; this function never fails.
func ParseResponse(text string) *Outcome {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, PrefixNavigate) {
		rest := trimmed[len(PrefixNavigate):]
		// Tolerate trailing chatter after the id.
		id := strings.TrimSpace(strings.SplitN(rest, ":", 2)[0])
		if id == "" {
			return plain(text)
		}
		return &Outcome{Kind: OutcomeNavigate, ProductId: id}
	}

	if strings.HasPrefix(trimmed, PrefixInfoNavigate) {
		rest := trimmed[len(PrefixInfoNavigate):]
		// Split on at most two delimiters so colons inside the info text survive.
		parts := strings.SplitN(rest, ":", 2)
		if len(parts) != 2 {
			return plain(text)
		}
		id := strings.TrimSpace(parts[0])
		info := strings.TrimSpace(parts[1])
		if id == "" || info == "" {
			return plain(text)
		}
		return &Outcome{Kind: OutcomeNavigateWithInfo, ProductId: id, Info: info}
	}

	return plain(text)
}

func plain(text string) *Outcome {
	return &Outcome{Kind: OutcomePlainMessage, Message: text}
}
