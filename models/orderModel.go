package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending       = "pending"
	OrderStatusPaid          = "paid"
	OrderStatusShipped       = "shipped"
	OrderStatusCompleted     = "completed"
	OrderStatusCancelled     = "cancelled"
	OrderStatusInvoiceFailed = "invoice_failed"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusExpired = "expired"
	PaymentStatusFailed  = "failed"
)

type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;size:36"`
	UserID          string      `json:"userId" gorm:"size:36;index"`
	TotalAmount     int64       `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	ShippingName    string      `json:"shippingName"`
	ShippingPhone   string      `json:"shippingPhone"`
	Notes           string      `json:"notes"`
	Status          string      `json:"status" gorm:"size:20;index"`
	OrderItems      []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem snapshots the product title and unit price at purchase time, so
// later edits to the product never change what the customer agreed to pay.
type OrderItem struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	OrderID      string    `json:"orderId" gorm:"size:36;index"`
	ProductID    string    `json:"productId" gorm:"size:36"`
	ProductTitle string    `json:"productTitle"`
	Quantity     int       `json:"quantity"`
	UnitPrice    int64     `json:"unitPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

type Payment struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	UserID         string     `json:"userId" gorm:"size:36;index"`
	OrderID        string     `json:"orderId" gorm:"size:36;index"`
	Amount         int64      `json:"amount"`
	Status         string     `json:"status" gorm:"size:20;index"`
	InvoiceID      string     `json:"invoiceId"`
	InvoiceURL     string     `json:"invoiceUrl"`
	ExternalID     string     `json:"externalId" gorm:"size:64;uniqueIndex"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentChannel string     `json:"paymentChannel"`
	PayerEmail     string     `json:"payerEmail"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
