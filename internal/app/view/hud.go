package view

import (
	"context"
	"fmt"
	"io"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
)

// HUD is the always-visible badge and summary bar: total quantity, line
// count, and the running total. It subscribes to the cart store and
// re-derives itself on every mutation.
type HUD struct {
	pricing service.PricingService
	out     io.Writer
}

func NewHUD(pricing service.PricingService, out io.Writer) *HUD {
	return &HUD{pricing: pricing, out: out}
}

func (h *HUD) Render(cart model.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(h.out, "[cart] empty")
		return
	}

	totals := h.pricing.Totals(context.Background(), cart)
	fmt.Fprintf(h.out, "[cart] %d item(s) in %d line(s), total %s\n",
		cart.TotalQuantity(), len(cart), formatMoney(totals.Total))
}

func (h *HUD) CartUpdated(cart model.Cart) {
	h.Render(cart)
}

// ObserverFunc adapts a function to the cart store's observer contract.
type ObserverFunc func(cart model.Cart)

func (f ObserverFunc) CartUpdated(cart model.Cart) {
	f(cart)
}
