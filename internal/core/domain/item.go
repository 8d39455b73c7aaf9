package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents one grade of waste paper held in stock.
// CurrentStock never goes negative: sales are rejected before the
// decrement would cross zero.
type InventoryItem struct {
	ItemID         string          `json:"itemID"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unitPrice"` // buying price per unit
	SalePrice      decimal.Decimal `json:"salePrice"`
	CurrentStock   decimal.Decimal `json:"currentStock"`
	MinStockLevel  decimal.Decimal `json:"minStockLevel"`
	TotalCollected decimal.Decimal `json:"totalCollected"` // cumulative quantity bought in
	TotalSold      decimal.Decimal `json:"totalSold"`      // cumulative quantity sold
	LastUpdated    time.Time       `json:"lastUpdated"`
}
