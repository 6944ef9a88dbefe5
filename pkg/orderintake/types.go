package orderintake

// OrderItem is one submitted order line.
type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Customer carries the contact fields entered at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Totals is the money breakdown computed at submission time.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// OrderRequest is the payload sent to the order-intake service.
type OrderRequest struct {
	Items    []OrderItem `json:"items"`
	Customer Customer    `json:"customer"`
	Totals   Totals      `json:"totals"`
}

// SubmitResponse is the successful response, carrying the identifier the
// service assigned to the order.
type SubmitResponse struct {
	Success     bool   `json:"success"`
	OrderID     uint   `json:"order_id"`
	ReceiptPath string `json:"receipt_path,omitempty"`
}

// errorResponse matches the failure body of the order-intake service.
type errorResponse struct {
	Detail string `json:"detail"`
}
