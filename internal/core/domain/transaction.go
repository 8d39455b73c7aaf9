package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a customer settled a sale.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentMobile PaymentMethod = "mobile"
	PaymentBank   PaymentMethod = "bank"
)

// CollectionTransaction records a purchase of waste paper from a supplier.
// Created once, never mutated; the collection list is append-only.
type CollectionTransaction struct {
	TransactionID string          `json:"transactionID"`
	SupplierID    string          `json:"supplierID"`
	SupplierName  string          `json:"supplierName"` // denormalized for display
	ItemID        string          `json:"itemID"`
	ItemName      string          `json:"itemName"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Notes         string          `json:"notes,omitempty"`
	Image         string          `json:"image,omitempty"`
	Date          time.Time       `json:"date"`
	ReceiptNumber string          `json:"receiptNumber"`
}

// SaleTransaction records a resale of stock to a customer. Append-only;
// creation is rejected when it would drive the item's stock negative.
type SaleTransaction struct {
	TransactionID string          `json:"transactionID"`
	ItemID        string          `json:"itemID"`
	ItemName      string          `json:"itemName"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CustomerName  string          `json:"customerName,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          time.Time       `json:"date"`
	ReceiptNumber string          `json:"receiptNumber"`
}
