package service

import (
	"errors"
	"math"
	"os"

	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoItems          = errors.New("order has no items")
	ErrInvalidOrderItem = errors.New("order item has an invalid quantity or price")
)

// ReceiptWriter renders an accepted order into a printable artifact and
// returns its path.
type ReceiptWriter interface {
	Write(order *model.Order) (string, error)
}

// OrderService is the intake side: it validates submitted orders, persists
// them with a sequential identifier, and renders receipts.
type OrderService interface {
	ProcessOrder(order *model.Order) (*model.Order, error)
	GetOrderByID(orderID uint) (*model.Order, error)
	ListOrders() ([]model.Order, error)
	ReprintReceipt(orderID uint) (string, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	receipts  ReceiptWriter
}

func NewOrderService(orderRepo repository.OrderRepository, receipts ReceiptWriter) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		receipts:  receipts,
	}
}

// ProcessOrder validates and persists a submitted order. The database
// primary key becomes the order identifier returned to the client. A
// receipt rendering failure does not reject the already-accepted order.
func (s *orderService) ProcessOrder(order *model.Order) (*model.Order, error) {
	if len(order.Items) == 0 {
		logger.Warn("Rejected order with no items")
		return nil, ErrNoItems
	}

	subtotal := 0.0
	for _, item := range order.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			logger.Warn("Rejected order with invalid item", map[string]interface{}{
				"line_id":    item.LineID,
				"quantity":   item.Quantity,
				"unit_price": item.UnitPrice,
			})
			return nil, ErrInvalidOrderItem
		}
		subtotal += float64(item.Quantity) * item.UnitPrice
	}

	// The client's totals stay authoritative for the receipt; drift is
	// only logged for investigation.
	if math.Abs(subtotal-order.Subtotal) > 0.005 {
		logger.Warn("Submitted subtotal does not match item fold", map[string]interface{}{
			"submitted":  order.Subtotal,
			"recomputed": subtotal,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("Failed to persist order", err, map[string]interface{}{
			"items": len(order.Items),
		})
		return nil, err
	}

	path, err := s.receipts.Write(order)
	if err != nil {
		logger.Error("Failed to render receipt for accepted order", err, map[string]interface{}{
			"order_id": order.ID,
		})
	} else {
		order.ReceiptPath = path
		if err := s.orderRepo.Update(order); err != nil {
			logger.Error("Failed to record receipt path", err, map[string]interface{}{
				"order_id": order.ID,
			})
		}
	}

	logger.Info("Order accepted", map[string]interface{}{
		"order_id": order.ID,
		"items":    len(order.Items),
		"total":    order.Total,
	})
	return order, nil
}

func (s *orderService) GetOrderByID(orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders returns all accepted orders, newest first.
func (s *orderService) ListOrders() ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}
	return orders, nil
}

// ReprintReceipt returns the receipt path for an order, re-rendering the
// workbook when the original file is gone.
func (s *orderService) ReprintReceipt(orderID uint) (string, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return "", err
	}

	if order.ReceiptPath != "" {
		if _, err := os.Stat(order.ReceiptPath); err == nil {
			return order.ReceiptPath, nil
		}
	}

	logger.Info("Re-rendering receipt", map[string]interface{}{
		"order_id": orderID,
	})
	path, err := s.receipts.Write(order)
	if err != nil {
		logger.Error("Failed to re-render receipt", err, map[string]interface{}{
			"order_id": orderID,
		})
		return "", err
	}

	order.ReceiptPath = path
	if err := s.orderRepo.Update(order); err != nil {
		logger.Error("Failed to record receipt path", err, map[string]interface{}{
			"order_id": orderID,
		})
	}
	return path, nil
}
