package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Catalog categories, one per static menu collection.
const (
	CategoryDishes     = "dishes"
	CategorySandwiches = "sandwiches"
	CategoryDrinks     = "drinks"
)

// SizeOption is a named variant of a catalog item carrying its own price.
type SizeOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CatalogItem mirrors one record of the static menu JSON collections.
// Pricing is one of: a flat price, a "min-max" range (resolved to its
// minimum), a list of priced sizes, or a list of unpriced types that only
// annotate the display name.
type CatalogItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Price       FlexPrice    `json:"price"`
	Sizes       []SizeOption `json:"size"`
	Types       []string     `json:"type"`
}

// FlexPrice is a price that the catalog may encode as a JSON number, a
// numeric string, or a "min-max" range string. A range resolves to its
// minimum; anything unparsable resolves to zero, matching how the menu
// treats malformed catalog pricing.
type FlexPrice float64

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = FlexPrice(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = FlexPrice(parsePriceString(s))
	return nil
}

func parsePriceString(s string) float64 {
	min := 0.0
	found := false
	for _, part := range strings.Split(s, "-") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}
		if !found || v < min {
			min = v
			found = true
		}
	}
	return min
}
