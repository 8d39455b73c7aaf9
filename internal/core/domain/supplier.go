package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierStatus indicates whether a supplier is currently trading with us.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// Supplier is a counterpart we buy waste paper from.
// TotalCollections and LastCollection are maintained by successful
// collection recordings only.
type Supplier struct {
	SupplierID       string          `json:"supplierID"`
	Name             string          `json:"name"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Status           SupplierStatus  `json:"status"`
	TotalCollections decimal.Decimal `json:"totalCollections"` // cumulative monetary value bought
	LastCollection   *time.Time      `json:"lastCollection,omitempty"`
}
