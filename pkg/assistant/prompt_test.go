package assistant

import (
	"strings"
	"testing"

	"smart-menu-be/internal/entity"
)

func sampleMenu() *entity.Menu {
	return &entity.Menu{
		Categories: []entity.Category{
			{
				Name: "Pizza",
				Products: []entity.Product{
					{Id: "pizza1", Name: "Margherita Pizza", Price: 12.99, Description: "Classic Italian pizza."},
				},
			},
			{
				Name: "Burger",
				Products: []entity.Product{
					{Id: "burger1", Name: "Classic Cheeseburger", Price: 9.99},
				},
			},
		},
	}
}

func TestMenuPromptBuilder(t *testing.T) {
	prompt := NewMenuPromptBuilder(sampleMenu()).Build()

	wantFragments := []string{
		"restaurant menu assistant",
		"- Pizza",
		"- Burger",
		"Margherita Pizza (ID: pizza1)",
		"Classic Cheeseburger (ID: burger1)",
		PrefixNavigate + "{product_id}",
		PrefixInfoNavigate + "{product_id}:{detailed_info}",
		"100 words or less",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestMenuPromptBuilderDeterministic(t *testing.T) {
	menu := sampleMenu()
	first := NewMenuPromptBuilder(menu).Build()
	second := NewMenuPromptBuilder(menu).Build()
	if first != second {
		t.Error("prompt should be deterministic for the same catalog")
	}
}

func TestMenuPromptBuilderEmptyCatalog(t *testing.T) {
	prompt := NewMenuPromptBuilder(&entity.Menu{}).Build()
	if !strings.Contains(prompt, "restaurant menu assistant") {
		t.Error("empty catalog should still produce the role section")
	}
}
