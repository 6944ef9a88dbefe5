package service

import (
	"errors"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
)

var (
	ErrInvalidLine = errors.New("cart line must have a positive quantity and a non-negative price")
)

// CartObserver is notified after every cart mutation has been persisted.
// Registered views re-derive themselves from the snapshot they receive, so
// every mutation path leaves all views consistent with persisted state.
type CartObserver interface {
	CartUpdated(cart model.Cart)
}

// CartService owns the canonical cart: the single source of truth every
// view consults. All mutations go through it, are persisted wholesale, and
// then fan out to subscribers.
type CartService interface {
	Cart() model.Cart
	AddLine(line model.CartLine) error
	AdjustQuantity(key model.LineKey, delta int) error
	Remove(key model.LineKey) error
	Clear() error
	Subscribe(observer CartObserver)
}

type cartService struct {
	repo      repository.CartRepository
	cart      model.Cart
	observers []CartObserver
}

// NewCartService loads the persisted cart (missing or corrupt data loads
// as empty) and returns the store.
func NewCartService(repo repository.CartRepository) CartService {
	cart := repo.Load()
	logger.Debug("Cart loaded", map[string]interface{}{
		"lines": len(cart),
	})
	return &cartService{repo: repo, cart: cart}
}

func (s *cartService) Subscribe(observer CartObserver) {
	s.observers = append(s.observers, observer)
}

// Cart returns a snapshot of the current cart.
func (s *cartService) Cart() model.Cart {
	return append(model.Cart{}, s.cart...)
}

// AddLine merges the line into the cart: an existing line with the same
// key has its quantity increased, keeping the unit price locked at first
// insertion; otherwise the line is appended.
func (s *cartService) AddLine(line model.CartLine) error {
	if line.Quantity < 1 || line.UnitPrice < 0 {
		logger.Warn("Rejected invalid cart line", map[string]interface{}{
			"key":        line.Key.String(),
			"quantity":   line.Quantity,
			"unit_price": line.UnitPrice,
		})
		return ErrInvalidLine
	}

	if i := s.cart.IndexOf(line.Key); i >= 0 {
		s.cart[i].Quantity += line.Quantity
		logger.Info("Merged line into cart", map[string]interface{}{
			"key":      line.Key.String(),
			"quantity": s.cart[i].Quantity,
		})
	} else {
		s.cart = append(s.cart, line)
		logger.Info("Added line to cart", map[string]interface{}{
			"key":      line.Key.String(),
			"quantity": line.Quantity,
		})
	}
	return s.commit()
}

// AdjustQuantity changes a line's quantity by delta, floored at zero. A
// line that reaches zero is removed entirely. Unknown keys are a no-op.
func (s *cartService) AdjustQuantity(key model.LineKey, delta int) error {
	i := s.cart.IndexOf(key)
	if i < 0 {
		return nil
	}

	quantity := s.cart[i].Quantity + delta
	if quantity <= 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
		logger.Info("Line removed from cart after reaching zero", map[string]interface{}{
			"key": key.String(),
		})
	} else {
		s.cart[i].Quantity = quantity
	}
	return s.commit()
}

// Remove deletes the line if present; it is a no-op otherwise.
func (s *cartService) Remove(key model.LineKey) error {
	i := s.cart.IndexOf(key)
	if i < 0 {
		return nil
	}
	s.cart = append(s.cart[:i], s.cart[i+1:]...)
	logger.Info("Line removed from cart", map[string]interface{}{
		"key": key.String(),
	})
	return s.commit()
}

// Clear empties the cart. The persisted key is overwritten with an empty
// sequence, which is equivalent to no cart at all.
func (s *cartService) Clear() error {
	s.cart = model.Cart{}
	logger.Info("Cart cleared")
	return s.commit()
}

// commit persists the full snapshot, then refreshes every subscriber.
func (s *cartService) commit() error {
	err := s.repo.Save(s.cart)
	if err != nil {
		logger.Error("Failed to persist cart mutation", err, map[string]interface{}{
			"lines": len(s.cart),
		})
	}

	snapshot := s.Cart()
	for _, observer := range s.observers {
		observer.CartUpdated(snapshot)
	}
	return err
}
