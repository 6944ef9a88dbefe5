package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
)

var (
	ErrNoQuantity     = errors.New("select a quantity first")
	ErrUnknownItem    = errors.New("no such menu item")
	ErrUnknownVariant = errors.New("no such size or type for this item")
)

// MenuView renders the menu grid. Per-item pending quantities and variant
// selections are ephemeral picker state: they live only in this view and
// never touch persisted state until an add commits them into a cart line.
type MenuView struct {
	menu     *service.Menu
	pricing  service.PricingService
	out      io.Writer
	pending  map[string]int
	selected map[string]string
}

func NewMenuView(menu *service.Menu, pricing service.PricingService, out io.Writer) *MenuView {
	return &MenuView{
		menu:     menu,
		pricing:  pricing,
		out:      out,
		pending:  make(map[string]int),
		selected: make(map[string]string),
	}
}

// Render re-derives the whole grid from the catalog and picker state.
func (v *MenuView) Render() {
	for _, category := range []string{model.CategoryDishes, model.CategorySandwiches, model.CategoryDrinks} {
		items := v.menu.Items(category)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(v.out, "== %s ==\n", category)
		for _, item := range items {
			v.renderCard(item)
		}
	}
}

func (v *MenuView) renderCard(item model.CatalogItem) {
	variant := v.variantOf(item)
	price := v.pricing.UnitPrice(item, variant)

	fmt.Fprintf(v.out, "[%s] %s  %s\n", item.ID, item.Title, formatMoney(price))
	if item.Description != "" {
		fmt.Fprintf(v.out, "      %s\n", item.Description)
	}

	if len(item.Sizes) > 0 {
		fmt.Fprint(v.out, "      sizes:")
		for _, size := range item.Sizes {
			marker := " "
			if size.Name == variant {
				marker = "*"
			}
			fmt.Fprintf(v.out, " %s%s (%s)", marker, size.Name, formatMoney(size.Price))
		}
		fmt.Fprintln(v.out)
	} else if len(item.Types) > 0 {
		fmt.Fprint(v.out, "      types:")
		for _, typ := range item.Types {
			marker := " "
			if typ == variant {
				marker = "*"
			}
			fmt.Fprintf(v.out, " %s%s", marker, typ)
		}
		fmt.Fprintln(v.out)
	}

	fmt.Fprintf(v.out, "      quantity: %d\n", v.pending[item.ID])
}

// variantOf returns the selected variant for an item, defaulting to the
// first declared size or type, or "" for flat-priced items.
func (v *MenuView) variantOf(item model.CatalogItem) string {
	if variant, ok := v.selected[item.ID]; ok {
		return variant
	}
	if len(item.Sizes) > 0 {
		return item.Sizes[0].Name
	}
	if len(item.Types) > 0 {
		return item.Types[0]
	}
	return ""
}

// IncreasePending bumps the picker quantity for an item.
func (v *MenuView) IncreasePending(itemID string) error {
	if _, _, ok := v.menu.Find(itemID); !ok {
		return ErrUnknownItem
	}
	v.pending[itemID]++
	return nil
}

// DecreasePending lowers the picker quantity for an item, floored at zero.
func (v *MenuView) DecreasePending(itemID string) error {
	if _, _, ok := v.menu.Find(itemID); !ok {
		return ErrUnknownItem
	}
	if v.pending[itemID] > 0 {
		v.pending[itemID]--
	}
	return nil
}

// SelectVariant records the chosen size or type for an item.
func (v *MenuView) SelectVariant(itemID, variant string) error {
	item, _, ok := v.menu.Find(itemID)
	if !ok {
		return ErrUnknownItem
	}
	for _, size := range item.Sizes {
		if size.Name == variant {
			v.selected[itemID] = variant
			return nil
		}
	}
	for _, typ := range item.Types {
		if typ == variant {
			v.selected[itemID] = variant
			return nil
		}
	}
	return ErrUnknownVariant
}

// Commit turns the picker state for an item into a cart line and resets
// the picker. The returned line carries the committed quantity, so
// confirmation messages report the quantity captured before the reset.
func (v *MenuView) Commit(itemID string) (model.CartLine, error) {
	item, category, ok := v.menu.Find(itemID)
	if !ok {
		return model.CartLine{}, ErrUnknownItem
	}

	quantity := v.pending[itemID]
	if quantity <= 0 {
		return model.CartLine{}, ErrNoQuantity
	}

	variant := v.variantOf(item)
	name := item.Title
	if variant != "" {
		name = fmt.Sprintf("%s (%s)", item.Title, variant)
	}

	line := model.CartLine{
		Key:       model.LineKey{ItemID: item.ID, Variant: variant},
		Name:      name,
		UnitPrice: v.pricing.UnitPrice(item, variant),
		Quantity:  quantity,
		Image:     item.Image,
		Category:  category,
	}

	v.pending[itemID] = 0
	return line, nil
}
