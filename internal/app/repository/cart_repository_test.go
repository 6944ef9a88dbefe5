package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
)

func sampleCart() model.Cart {
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

func TestFileCartRepository_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	repo := NewFileCartRepository(path)

	require.NoError(t, repo.Save(sampleCart()))

	loaded := repo.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, sampleCart(), loaded)
}

func TestFileCartRepository_LoadMissingFile(t *testing.T) {
	repo := NewFileCartRepository(filepath.Join(t.TempDir(), "missing.json"))

	cart := repo.Load()
	assert.NotNil(t, cart)
	assert.True(t, cart.IsEmpty())
}

func TestFileCartRepository_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileCartRepository(path)
	cart := repo.Load()
	assert.True(t, cart.IsEmpty())
}

func TestFileCartRepository_SaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	repo := NewFileCartRepository(path)

	require.NoError(t, repo.Save(sampleCart()))
	require.NoError(t, repo.Save(model.Cart{}))

	assert.True(t, repo.Load().IsEmpty())
}

func TestMemoryCartRepository(t *testing.T) {
	repo := NewMemoryCartRepository()

	assert.True(t, repo.Load().IsEmpty())

	require.NoError(t, repo.Save(sampleCart()))
	assert.Equal(t, sampleCart(), repo.Load())
}
