package view

import (
	"context"
	"fmt"
	"io"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
)

// CartView renders the cart listing with per-line totals and the money
// breakdown. It is a pure function of the cart snapshot it receives.
type CartView struct {
	pricing service.PricingService
	out     io.Writer
}

func NewCartView(pricing service.PricingService, out io.Writer) *CartView {
	return &CartView{pricing: pricing, out: out}
}

// Render draws the full cart page from the snapshot.
func (v *CartView) Render(cart model.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(v.out, "Your cart is empty.")
		return
	}

	for i, line := range cart {
		lineTotal := float64(line.Quantity) * line.UnitPrice
		fmt.Fprintf(v.out, "%2d. %s  x%d @ %s = %s\n",
			i+1, line.Name, line.Quantity, formatMoney(line.UnitPrice), formatMoney(lineTotal))
	}

	totals := v.pricing.Totals(context.Background(), cart)
	fmt.Fprintf(v.out, "Subtotal:     %s\n", formatMoney(totals.Subtotal))
	fmt.Fprintf(v.out, "Delivery fee: %s\n", formatMoney(totals.DeliveryFee))
	fmt.Fprintf(v.out, "Total:        %s\n", formatMoney(totals.Total))
}

// CartUpdated re-renders the listing whenever the store mutates.
func (v *CartView) CartUpdated(cart model.Cart) {
	v.Render(cart)
}

// formatMoney applies the two-digit display rounding. Internal
// accumulation never rounds; only this presentation layer does.
func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
