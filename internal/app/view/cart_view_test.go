package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
)

// fixedFeeCatalog serves only a delivery fee, which is all the cart and
// badge renderers need.
type fixedFeeCatalog struct {
	fee float64
}

func (c fixedFeeCatalog) Collection(context.Context, string) ([]model.CatalogItem, error) {
	return nil, nil
}

func (c fixedFeeCatalog) DeliveryFee(context.Context) (float64, error) {
	return c.fee, nil
}

func testCart() model.Cart {
	return model.Cart{
		{
			Key:       model.LineKey{ItemID: "house-burger", Variant: "Large"},
			Name:      "House Burger (Large)",
			UnitPrice: 12,
			Quantity:  2,
		},
		{
			Key:       model.LineKey{ItemID: "espresso"},
			Name:      "Espresso",
			UnitPrice: 2,
			Quantity:  1,
		},
	}
}

func TestCartView_Render(t *testing.T) {
	var buf bytes.Buffer
	cartView := NewCartView(service.NewPricingService(fixedFeeCatalog{fee: 3.5}), &buf)

	cartView.Render(testCart())
	out := buf.String()

	assert.Contains(t, out, "House Burger (Large)  x2 @ 12.00 = 24.00")
	assert.Contains(t, out, "Espresso  x1 @ 2.00 = 2.00")
	assert.Contains(t, out, "Subtotal:     26.00")
	assert.Contains(t, out, "Delivery fee: 3.50")
	assert.Contains(t, out, "Total:        29.50")
}

func TestCartView_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	cartView := NewCartView(service.NewPricingService(fixedFeeCatalog{fee: 3.5}), &buf)

	cartView.Render(model.Cart{})
	assert.Contains(t, buf.String(), "Your cart is empty.")
}

func TestHUD_Render(t *testing.T) {
	var buf bytes.Buffer
	hud := NewHUD(service.NewPricingService(fixedFeeCatalog{fee: 3.5}), &buf)

	hud.Render(testCart())
	assert.Contains(t, buf.String(), "3 item(s) in 2 line(s), total 29.50")
}

func TestHUD_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	hud := NewHUD(service.NewPricingService(fixedFeeCatalog{}), &buf)

	hud.Render(model.Cart{})
	assert.Contains(t, buf.String(), "[cart] empty")
}

func TestViewsReactToCartMutations(t *testing.T) {
	var hudOut bytes.Buffer
	pricing := service.NewPricingService(fixedFeeCatalog{fee: 3.5})
	hud := NewHUD(pricing, &hudOut)

	var observed []model.Cart
	recorder := ObserverFunc(func(cart model.Cart) {
		observed = append(observed, cart)
	})

	carts := service.NewCartService(repository.NewMemoryCartRepository())
	carts.Subscribe(hud)
	carts.Subscribe(recorder)

	line := testCart()[0]
	assert.NoError(t, carts.AddLine(line))

	assert.Contains(t, hudOut.String(), "2 item(s) in 1 line(s)")
	assert.Len(t, observed, 1)
}
