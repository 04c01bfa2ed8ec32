package assistant

import (
	"fmt"
	"strings"

	"smart-menu-be/internal/entity"
)

// MenuPromptBuilder builds the assistant instruction block from the current
// catalog. It is rebuilt on every chat request, never cached, so catalog
// edits take effect immediately.
type MenuPromptBuilder struct {
	menu *entity.Menu
}

func NewMenuPromptBuilder(menu *entity.Menu) *MenuPromptBuilder {
	return &MenuPromptBuilder{menu: menu}
}

func (b *MenuPromptBuilder) Build() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writeCatalog(&prompt)
	b.writeRules(&prompt)
	b.writeExamples(&prompt)

	return prompt.String()
}

func (b *MenuPromptBuilder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("You are a restaurant menu assistant. Your sole purpose is to provide information about our menu items and help customers navigate to specific products.\n\n")
}

func (b *MenuPromptBuilder) writeCatalog(prompt *strings.Builder) {
	prompt.WriteString("Available Categories:\n")
	for _, cat := range b.menu.Categories {
		fmt.Fprintf(prompt, "- %s\n", cat.Name)
	}

	prompt.WriteString("\nAvailable Products (with their IDs):\n")
	for _, cat := range b.menu.Categories {
		fmt.Fprintf(prompt, "\n%s:\n", cat.Name)
		for _, p := range cat.Products {
			fmt.Fprintf(prompt, "- %s (ID: %s)\n", p.Name, p.Id)
		}
	}
	prompt.WriteString("\n")
}

func (b *MenuPromptBuilder) writeRules(prompt *strings.Builder) {
	prompt.WriteString("Rules for responses:\n")
	prompt.WriteString("1. ONLY provide information about our menu items\n")
	prompt.WriteString("2. If asked about non-menu items, respond with: \"I can only provide information about our menu items. Please ask about our food and drinks.\"\n")
	prompt.WriteString("3. For navigation commands:\n")
	prompt.WriteString("   - If the user says \"take me to\", \"show me\", \"let's go to\", or similar phrases followed by a product name, respond with: \"" + PrefixNavigate + "{product_id}\"\n")
	prompt.WriteString("4. For combined requests (asking for info AND navigation):\n")
	prompt.WriteString("   - If the user asks for information about a product and also wants to see it, respond with: \"" + PrefixInfoNavigate + "{product_id}:{detailed_info}\"\n")
	prompt.WriteString("5. For product information:\n")
	prompt.WriteString("   - Provide detailed, appetizing descriptions\n")
	prompt.WriteString("   - Include price, ingredients, and nutritional information\n")
	prompt.WriteString("   - Use engaging, conversational language\n")
	prompt.WriteString("   - STRICTLY limit responses to 100 words or less\n")
	prompt.WriteString("   - Count words carefully and ensure you don't exceed the limit\n\n")
}

func (b *MenuPromptBuilder) writeExamples(prompt *strings.Builder) {
	if len(b.menu.Categories) == 0 || len(b.menu.Categories[0].Products) == 0 {
		return
	}
	sample := b.menu.Categories[0].Products[0]

	prompt.WriteString("Example responses:\n")
	fmt.Fprintf(prompt, "For \"take me to %s\":\n\"%s%s\"\n\n", sample.Name, PrefixNavigate, sample.Id)
	fmt.Fprintf(prompt, "For \"tell me about %s and take me there\":\n\"%s%s:%s\"\n\n", sample.Name, PrefixInfoNavigate, sample.Id, sample.Description)
	prompt.WriteString("Remember:\n")
	prompt.WriteString("- Only provide information about our menu items\n")
	prompt.WriteString("- Respond with navigation commands when appropriate\n")
	prompt.WriteString("- STRICTLY limit all responses to 100 words or less\n")
}
