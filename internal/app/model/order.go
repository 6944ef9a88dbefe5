package model

import (
	"time"

	"gorm.io/gorm"
)

// Order is a finalized order accepted by the intake service. The primary
// key doubles as the sequential order identifier returned to the client.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerPhone   string         `gorm:"not null" json:"customer_phone"`
	CustomerAddress string         `gorm:"type:text" json:"customer_address"`
	CustomerNotes   string         `gorm:"type:text" json:"customer_notes"`
	Subtotal        float64        `gorm:"not null" json:"subtotal"`
	DeliveryFee     float64        `gorm:"not null" json:"delivery_fee"`
	Total           float64        `gorm:"not null" json:"total"`
	ReceiptPath     string         `json:"receipt_path,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an accepted order, captured as submitted.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	LineID    string    `gorm:"not null" json:"line_id"`
	Name      string    `gorm:"not null" json:"name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
