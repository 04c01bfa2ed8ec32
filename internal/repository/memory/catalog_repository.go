package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"smart-menu-be/internal/entity"
)

// CatalogRepository holds the product catalog loaded once at startup.
// It is read-only after load, so lookups need no locking.
type CatalogRepository struct {
	menu     *entity.Menu
	byId     map[string]*entity.Product
	idByName map[string]string
}

func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var menu entity.Menu
	if err := json.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	repo := &CatalogRepository{
		menu:     &menu,
		byId:     make(map[string]*entity.Product),
		idByName: make(map[string]string),
	}
	for ci := range menu.Categories {
		cat := &menu.Categories[ci]
		for pi := range cat.Products {
			p := &cat.Products[pi]
			repo.byId[p.Id] = p
			repo.idByName[strings.ToLower(p.Name)] = p.Id
		}
	}

	return repo, nil
}

func (r *CatalogRepository) Menu() *entity.Menu {
	return r.menu
}

func (r *CatalogRepository) ProductById(id string) (*entity.Product, bool) {
	p, ok := r.byId[id]
	return p, ok
}

// ProductIdByName resolves a display name, case-insensitively.
func (r *CatalogRepository) ProductIdByName(name string) (string, bool) {
	id, ok := r.idByName[strings.ToLower(name)]
	return id, ok
}

func (r *CatalogRepository) CategoryNames() []string {
	names := make([]string, 0, len(r.menu.Categories))
	for _, cat := range r.menu.Categories {
		names = append(names, cat.Name)
	}
	return names
}

func (r *CatalogRepository) TotalProducts() int {
	return len(r.byId)
}
