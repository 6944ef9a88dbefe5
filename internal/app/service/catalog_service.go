package service

import (
	"context"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Menu holds the three catalog collections the menu page renders.
type Menu struct {
	Dishes     []model.CatalogItem
	Sandwiches []model.CatalogItem
	Drinks     []model.CatalogItem
}

// Items returns the collection for a category.
func (m *Menu) Items(category string) []model.CatalogItem {
	switch category {
	case model.CategoryDishes:
		return m.Dishes
	case model.CategorySandwiches:
		return m.Sandwiches
	case model.CategoryDrinks:
		return m.Drinks
	}
	return nil
}

// Find looks an item up by id across all collections.
func (m *Menu) Find(itemID string) (model.CatalogItem, string, bool) {
	for _, category := range []string{model.CategoryDishes, model.CategorySandwiches, model.CategoryDrinks} {
		for _, item := range m.Items(category) {
			if item.ID == itemID {
				return item, category, true
			}
		}
	}
	return model.CatalogItem{}, "", false
}

// CatalogService loads the static catalog collections for rendering.
type CatalogService interface {
	LoadMenu(ctx context.Context) (*Menu, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// LoadMenu fetches the three item collections concurrently and joins them
// all-or-nothing: any fetch failure aborts menu rendering entirely.
func (s *catalogService) LoadMenu(ctx context.Context) (*Menu, error) {
	var menu Menu

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menu.Dishes, err = s.catalogRepo.Collection(ctx, model.CategoryDishes)
		return err
	})
	g.Go(func() error {
		var err error
		menu.Sandwiches, err = s.catalogRepo.Collection(ctx, model.CategorySandwiches)
		return err
	})
	g.Go(func() error {
		var err error
		menu.Drinks, err = s.catalogRepo.Collection(ctx, model.CategoryDrinks)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to load menu catalog", err)
		return nil, err
	}

	logger.Info("Menu catalog loaded", map[string]interface{}{
		"dishes":     len(menu.Dishes),
		"sandwiches": len(menu.Sandwiches),
		"drinks":     len(menu.Drinks),
	})
	return &menu, nil
}
