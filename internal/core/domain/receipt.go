package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptType distinguishes purchase receipts from sale receipts.
type ReceiptType string

const (
	ReceiptCollection ReceiptType = "collection"
	ReceiptSale       ReceiptType = "sale"
)

// ReceiptLine is one line item on a printed receipt.
type ReceiptLine struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Receipt is the immutable human-presentable record paired with exactly one
// collection or sale transaction, keyed by its generated receipt number.
type Receipt struct {
	ReceiptID       string          `json:"receiptID"`
	ReceiptNumber   string          `json:"receiptNumber"`
	Type            ReceiptType     `json:"type"`
	Lines           []ReceiptLine   `json:"lines"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Date            time.Time       `json:"date"`
	CounterpartName string          `json:"counterpartName"` // supplier or customer
	Notes           string          `json:"notes,omitempty"`
}
