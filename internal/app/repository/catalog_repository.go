package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
)

// CatalogRepository reads the static catalog resources: three item
// collections plus the delivery-fee record.
type CatalogRepository interface {
	Collection(ctx context.Context, category string) ([]model.CatalogItem, error)
	DeliveryFee(ctx context.Context) (float64, error)
}

// collectionFiles maps a catalog category to its static JSON resource.
var collectionFiles = map[string]string{
	model.CategoryDishes:     "Dishes.json",
	model.CategorySandwiches: "Sandwiches.json",
	model.CategoryDrinks:     "Drinks.json",
}

const deliveryFeeFile = "Delivery.json"

type httpCatalogRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPCatalogRepository returns a catalog repository fetching the JSON
// resources from the given base URL.
func NewHTTPCatalogRepository(baseURL string) CatalogRepository {
	return &httpCatalogRepository{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (r *httpCatalogRepository) Collection(ctx context.Context, category string) ([]model.CatalogItem, error) {
	file, ok := collectionFiles[category]
	if !ok {
		return nil, fmt.Errorf("unknown catalog category: %s", category)
	}

	var items []model.CatalogItem
	if err := r.fetch(ctx, file, &items); err != nil {
		return nil, err
	}

	logger.Debug("Catalog collection fetched", map[string]interface{}{
		"category": category,
		"count":    len(items),
	})
	return items, nil
}

func (r *httpCatalogRepository) DeliveryFee(ctx context.Context) (float64, error) {
	var fee struct {
		Price float64 `json:"price"`
	}
	if err := r.fetch(ctx, deliveryFeeFile, &fee); err != nil {
		return 0, err
	}
	return fee.Price, nil
}

func (r *httpCatalogRepository) fetch(ctx context.Context, file string, out interface{}) error {
	url := fmt.Sprintf("%s/%s", r.baseURL, file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to load %s: unexpected status %d", file, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return nil
}
