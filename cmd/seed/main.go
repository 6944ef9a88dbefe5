package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wempyhq/wempy-ordering/config"
)

// seedItem mirrors the on-disk catalog shape. Price is interface{} because
// the catalog carries both plain numbers and "min-max" range strings.
type seedItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Image       string      `json:"image,omitempty"`
	Price       interface{} `json:"price,omitempty"`
	Sizes       []seedSize  `json:"size,omitempty"`
	Types       []string    `json:"type,omitempty"`
}

type seedSize struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dir := cfg.Server.CatalogDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal("Failed to create catalog directory:", err)
	}

	files := map[string]interface{}{
		"Dishes.json":     dishes(),
		"Sandwiches.json": sandwiches(),
		"Drinks.json":     drinks(),
		"Delivery.json":   map[string]float64{"price": 3.5},
	}

	for name, payload := range files {
		path := filepath.Join(dir, name)
		if err := writeJSON(path, payload); err != nil {
			log.Fatal("Failed to write catalog file:", err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	fmt.Println("Catalog seeded successfully!")
}

func writeJSON(path string, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

func dishes() []seedItem {
	return []seedItem{
		{
			ID:          "grilled-salmon",
			Title:       "Grilled Salmon",
			Description: "Salmon fillet with seasonal vegetables",
			Image:       "images/grilled-salmon.jpg",
			Price:       14.5,
		},
		{
			ID:          "pasta-bolognese",
			Title:       "Pasta Bolognese",
			Description: "Fresh tagliatelle with slow-cooked ragu",
			Image:       "images/pasta-bolognese.jpg",
			Price:       "10-14",
		},
		{
			ID:          "house-burger",
			Title:       "House Burger",
			Description: "Beef patty, cheddar, pickles",
			Image:       "images/house-burger.jpg",
			Sizes: []seedSize{
				{Name: "Regular", Price: 9.0},
				{Name: "Large", Price: 12.0},
			},
		},
	}
}

func sandwiches() []seedItem {
	return []seedItem{
		{
			ID:          "club-sandwich",
			Title:       "Club Sandwich",
			Description: "Triple-decker with chicken and bacon",
			Image:       "images/club-sandwich.jpg",
			Price:       8.0,
			Types:       []string{"White", "Wholegrain"},
		},
		{
			ID:          "veggie-wrap",
			Title:       "Veggie Wrap",
			Description: "Grilled vegetables and hummus",
			Image:       "images/veggie-wrap.jpg",
			Price:       7.0,
		},
	}
}

func drinks() []seedItem {
	return []seedItem{
		{
			ID:    "lemonade",
			Title: "Fresh Lemonade",
			Image: "images/lemonade.jpg",
			Sizes: []seedSize{
				{Name: "Small", Price: 2.5},
				{Name: "Large", Price: 4.0},
			},
		},
		{
			ID:    "espresso",
			Title: "Espresso",
			Image: "images/espresso.jpg",
			Price: 2.0,
		},
	}
}
