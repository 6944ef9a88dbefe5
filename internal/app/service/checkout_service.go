package service

import (
	"context"
	"errors"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"github.com/wempyhq/wempy-ordering/pkg/orderintake"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// unspecifiedField is the sentinel sent for customer contact fields the
// user left blank. Notes stay empty when omitted.
const unspecifiedField = "unspecified"

// OrderSubmitter is the slice of the order-intake client the checkout
// flow needs.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order orderintake.OrderRequest) (*orderintake.SubmitResponse, error)
}

// CheckoutService turns the current cart snapshot plus customer contact
// fields into a submitted order.
type CheckoutService interface {
	Submit(ctx context.Context, customer orderintake.Customer) (*orderintake.SubmitResponse, error)
}

type checkoutService struct {
	carts     CartService
	pricing   PricingService
	submitter OrderSubmitter
}

func NewCheckoutService(carts CartService, pricing PricingService, submitter OrderSubmitter) CheckoutService {
	return &checkoutService{
		carts:     carts,
		pricing:   pricing,
		submitter: submitter,
	}
}

// Submit builds the order payload from the live cart snapshot, computing
// totals at submission time, and sends it to the order-intake service.
// An empty cart is rejected before any network call. On any submission
// failure the cart is left untouched; on confirmed success the persisted
// cart is cleared entirely. Submission is never retried automatically.
func (s *checkoutService) Submit(ctx context.Context, customer orderintake.Customer) (*orderintake.SubmitResponse, error) {
	cart := s.carts.Cart()
	if cart.IsEmpty() {
		logger.Warn("Checkout rejected: cart is empty")
		return nil, ErrEmptyCart
	}

	totals := s.pricing.Totals(ctx, cart)
	order := orderintake.OrderRequest{
		Items:    payloadItems(cart),
		Customer: normalizeCustomer(customer),
		Totals: orderintake.Totals{
			Subtotal: totals.Subtotal,
			Delivery: totals.DeliveryFee,
			Total:    totals.Total,
		},
	}

	logger.Info("Submitting order", map[string]interface{}{
		"items": len(order.Items),
		"total": order.Totals.Total,
	})

	resp, err := s.submitter.SubmitOrder(ctx, order)
	if err != nil {
		logger.Error("Order submission failed, cart left untouched", err, map[string]interface{}{
			"items": len(order.Items),
		})
		return nil, err
	}

	if err := s.carts.Clear(); err != nil {
		logger.Error("Order accepted but clearing the cart failed", err, map[string]interface{}{
			"order_id": resp.OrderID,
		})
	}

	logger.Info("Order submitted successfully", map[string]interface{}{
		"order_id": resp.OrderID,
	})
	return resp, nil
}

func payloadItems(cart model.Cart) []orderintake.OrderItem {
	items := make([]orderintake.OrderItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, orderintake.OrderItem{
			ID:    line.Key.String(),
			Name:  line.Name,
			Qty:   line.Quantity,
			Price: line.UnitPrice,
		})
	}
	return items
}

func normalizeCustomer(customer orderintake.Customer) orderintake.Customer {
	if customer.Name == "" {
		customer.Name = unspecifiedField
	}
	if customer.Phone == "" {
		customer.Phone = unspecifiedField
	}
	if customer.Address == "" {
		customer.Address = unspecifiedField
	}
	return customer
}
