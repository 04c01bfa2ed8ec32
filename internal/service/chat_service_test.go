package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smart-menu-be/internal/repository/memory"
	"smart-menu-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	reply    string
	err      error
	messages []llm.Message
}

func (s *stubLLM) Chat(_ context.Context, messages []llm.Message, _ ...llm.Option) (string, error) {
	s.messages = messages
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func testCatalogRepo(t *testing.T) *memory.CatalogRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	doc := `{
  "categories": [
    {
      "name": "Pizza",
      "products": [
        {"id": "pizza1", "name": "Margherita Pizza", "price": 12.99, "description": "Classic Italian pizza."}
      ]
    }
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	repo, err := memory.NewCatalogRepository(path)
	require.NoError(t, err)
	return repo
}

func TestChatNavigationResponse(t *testing.T) {
	provider := &stubLLM{reply: "NAVIGATE_TO_PRODUCT:pizza1"}
	svc := NewChatService(testCatalogRepo(t), provider, nopLogger{})

	res, err := svc.Chat(context.Background(), "take me to the margherita")
	require.NoError(t, err)

	assert.Equal(t, "navigation", res.Type)
	assert.Equal(t, "pizza1", res.ProductId)
	assert.Equal(t, "Navigating to pizza1", res.Message)
	assert.Empty(t, res.Info)
}

func TestChatInfoAndNavigateResponse(t *testing.T) {
	provider := &stubLLM{reply: "INFO_AND_NAVIGATE:pizza1:A classic with fresh basil."}
	svc := NewChatService(testCatalogRepo(t), provider, nopLogger{})

	res, err := svc.Chat(context.Background(), "tell me about the margherita and show it")
	require.NoError(t, err)

	assert.Equal(t, "info_and_navigate", res.Type)
	assert.Equal(t, "pizza1", res.ProductId)
	assert.Equal(t, "A classic with fresh basil.", res.Info)
	assert.Equal(t, "Navigating to pizza1: A classic with fresh basil.", res.Message)
}

func TestChatPlainMessageResponse(t *testing.T) {
	provider := &stubLLM{reply: "The Margherita costs $12.99."}
	svc := NewChatService(testCatalogRepo(t), provider, nopLogger{})

	res, err := svc.Chat(context.Background(), "how much is the margherita?")
	require.NoError(t, err)

	assert.Equal(t, "message", res.Type)
	assert.Equal(t, "The Margherita costs $12.99.", res.Message)
	assert.Empty(t, res.ProductId)
}

func TestChatSendsPromptAndMessageInOrder(t *testing.T) {
	provider := &stubLLM{reply: "ok"}
	svc := NewChatService(testCatalogRepo(t), provider, nopLogger{})

	_, err := svc.Chat(context.Background(), "what pizzas do you have?")
	require.NoError(t, err)

	require.Len(t, provider.messages, 3)
	assert.Equal(t, "user", provider.messages[0].Role)
	assert.True(t, strings.Contains(provider.messages[0].Content, "pizza1"))
	assert.Equal(t, "model", provider.messages[1].Role)
	assert.Equal(t, "user", provider.messages[2].Role)
	assert.Equal(t, "what pizzas do you have?", provider.messages[2].Content)
}

func TestChatProviderError(t *testing.T) {
	provider := &stubLLM{err: errors.New("upstream timeout")}
	svc := NewChatService(testCatalogRepo(t), provider, nopLogger{})

	_, err := svc.Chat(context.Background(), "hello")
	assert.Error(t, err)
}

func TestChatWithoutCatalog(t *testing.T) {
	svc := NewChatService(nil, &stubLLM{reply: "ok"}, nopLogger{})

	_, err := svc.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
