package service

import (
	"context"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
)

// Totals is the derived money breakdown for a cart snapshot. Values are
// accumulated without rounding; only the presentation layer rounds for
// display.
type Totals struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
}

// PricingService derives unit prices from catalog items and computes cart
// totals including the externally sourced delivery fee.
type PricingService interface {
	UnitPrice(item model.CatalogItem, variant string) float64
	Totals(ctx context.Context, cart model.Cart) Totals
}

type pricingService struct {
	catalogRepo repository.CatalogRepository
}

func NewPricingService(catalogRepo repository.CatalogRepository) PricingService {
	return &pricingService{catalogRepo: catalogRepo}
}

// UnitPrice resolves the price of an item for the selected variant. Sized
// variants carry their own price, defaulting to the first declared size
// when none is selected yet. Type variants only annotate the name, so the
// flat price applies. Everything else is the flat price, with a "min-max"
// range already resolved to its minimum at decode time.
func (s *pricingService) UnitPrice(item model.CatalogItem, variant string) float64 {
	if len(item.Sizes) > 0 {
		for _, size := range item.Sizes {
			if size.Name == variant {
				return size.Price
			}
		}
		return item.Sizes[0].Price
	}
	return float64(item.Price)
}

// Totals folds quantity times unit price over the cart and adds the
// delivery fee. A failed delivery-fee lookup is logged and degrades to
// zero; it never blocks the computation.
func (s *pricingService) Totals(ctx context.Context, cart model.Cart) Totals {
	subtotal := 0.0
	for _, line := range cart {
		subtotal += float64(line.Quantity) * line.UnitPrice
	}

	deliveryFee := 0.0
	if !cart.IsEmpty() {
		fee, err := s.catalogRepo.DeliveryFee(ctx)
		if err != nil {
			logger.Warn("Could not load delivery fee, defaulting to zero", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			deliveryFee = fee
		}
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
	}
}
