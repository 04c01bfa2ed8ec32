package service

import (
	"context"
	"errors"

	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/entity"
	"smart-menu-be/internal/repository/memory"
	"smart-menu-be/pkg/assistant"
	"smart-menu-be/pkg/llm"
)

var ErrProductNotFound = errors.New("product not found")

type IMenuService interface {
	GetMenu() (*entity.Menu, error)
	GetProduct(id string) (*entity.Product, error)
	TestMenu(ctx context.Context) (*dto.TestMenuResponse, error)
}

type menuService struct {
	catalog *memory.CatalogRepository
	llm     llm.LLMProvider
}

func NewMenuService(catalog *memory.CatalogRepository, provider llm.LLMProvider) IMenuService {
	return &menuService{
		catalog: catalog,
		llm:     provider,
	}
}

func (s *menuService) GetMenu() (*entity.Menu, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	return s.catalog.Menu(), nil
}

func (s *menuService) GetProduct(id string) (*entity.Product, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	product, ok := s.catalog.ProductById(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// TestMenu is a diagnostic: catalog stats plus one live completion-service
// round trip with a fixed sample question.
func (s *menuService) TestMenu(ctx context.Context) (*dto.TestMenuResponse, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	prompt := assistant.NewMenuPromptBuilder(s.catalog.Menu()).Build()

	question := "What is the price of the first item on the menu?"
	reply, err := s.llm.Generate(ctx, prompt+"\n\nCustomer Question: "+question+"\nAssistant:")
	if err != nil {
		return nil, err
	}

	return &dto.TestMenuResponse{
		Success:       true,
		MenuLoaded:    true,
		Categories:    s.catalog.CategoryNames(),
		TotalProducts: s.catalog.TotalProducts(),
		PromptLength:  len(prompt),
		TestResponse:  reply,
	}, nil
}
