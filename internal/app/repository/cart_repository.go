package repository

import (
	"encoding/json"
	"os"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
)

// CartRepository persists the whole cart under a single key, overwritten
// wholesale on every mutation. Load never fails: missing, unreadable, or
// corrupt data comes back as an empty cart.
type CartRepository interface {
	Load() model.Cart
	Save(cart model.Cart) error
}

type fileCartRepository struct {
	path string
}

// NewFileCartRepository returns a cart repository backed by a JSON file.
func NewFileCartRepository(path string) CartRepository {
	return &fileCartRepository{path: path}
}

func (r *fileCartRepository) Load() model.Cart {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read persisted cart, starting empty", map[string]interface{}{
				"path":  r.path,
				"error": err.Error(),
			})
		}
		return model.Cart{}
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Warn("Persisted cart is corrupt, starting empty", map[string]interface{}{
			"path":  r.path,
			"error": err.Error(),
		})
		return model.Cart{}
	}
	return cart
}

func (r *fileCartRepository) Save(cart model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		logger.Error("Failed to serialize cart", err, map[string]interface{}{
			"path": r.path,
		})
		return err
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		logger.Error("Failed to persist cart", err, map[string]interface{}{
			"path": r.path,
		})
		return err
	}

	logger.Debug("Cart persisted", map[string]interface{}{
		"path":  r.path,
		"lines": len(cart),
	})
	return nil
}

type memoryCartRepository struct {
	data []byte
}

// NewMemoryCartRepository returns an in-memory cart repository, used in
// tests in place of a real persistence backend.
func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{}
}

func (r *memoryCartRepository) Load() model.Cart {
	if r.data == nil {
		return model.Cart{}
	}
	var cart model.Cart
	if err := json.Unmarshal(r.data, &cart); err != nil {
		return model.Cart{}
	}
	return cart
}

func (r *memoryCartRepository) Save(cart model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}
