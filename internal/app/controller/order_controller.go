package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
	apperrors "github.com/wempyhq/wempy-ordering/internal/errors"
	"github.com/wempyhq/wempy-ordering/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type SubmitOrderItem struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Qty   int     `json:"qty" binding:"required,gt=0"`
	Price float64 `json:"price" binding:"gte=0"`
}

type SubmitOrderCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type SubmitOrderTotals struct {
	Subtotal float64 `json:"subtotal" binding:"gte=0"`
	Delivery float64 `json:"delivery" binding:"gte=0"`
	Total    float64 `json:"total" binding:"gte=0"`
}

type SubmitOrderRequest struct {
	Items    []SubmitOrderItem   `json:"items" binding:"required"`
	Customer SubmitOrderCustomer `json:"customer"`
	Totals   SubmitOrderTotals   `json:"totals"`
}

// SubmitOrder accepts a finalized order payload
// POST /submit_order
func (ctrl *OrderController) SubmitOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order payload")
		return
	}

	order := &model.Order{
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
		CustomerNotes:   req.Customer.Notes,
		Subtotal:        req.Totals.Subtotal,
		DeliveryFee:     req.Totals.Delivery,
		Total:           req.Totals.Total,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderItem{
			LineID:    item.ID,
			Name:      item.Name,
			Quantity:  item.Qty,
			UnitPrice: item.Price,
		})
	}

	accepted, err := ctrl.orderService.ProcessOrder(order)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoItems):
			apperrors.BadRequest(c, apperrors.OrderNoItems, "Order has no items")
		case errors.Is(err, service.ErrInvalidOrderItem):
			apperrors.BadRequest(c, apperrors.OrderInvalidItem, "Order item has an invalid quantity or price")
		default:
			log.Error("Failed to process order", err, nil)
			apperrors.InternalError(c, "Error processing order")
		}
		return
	}

	log.Info("Order accepted", map[string]interface{}{
		"order_id": accepted.ID,
	})
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_id":     accepted.ID,
		"receipt_path": accepted.ReceiptPath,
	})
}

// ListOrders returns all accepted orders, newest first
// GET /orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.ListOrders()
	if err != nil {
		log.Error("Failed to list orders", err, nil)
		apperrors.InternalError(c, "Error listing orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetReceipt returns (re-rendering if needed) the receipt for an order
// GET /orders/:id/receipt
func (ctrl *OrderController) GetReceipt(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid order ID")
		return
	}

	path, err := ctrl.orderService.ReprintReceipt(uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, fmt.Sprintf("Order %d not found.", orderID))
			return
		}
		log.Error("Failed to produce receipt", err, map[string]interface{}{
			"order_id": orderID,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ReceiptUnavailable,
			fmt.Sprintf("Could not produce receipt for order %d", orderID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_id":     orderID,
		"receipt_path": path,
	})
}
