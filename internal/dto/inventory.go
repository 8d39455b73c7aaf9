package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
)

// CreateItemRequest defines the data needed to create a new inventory item.
type CreateItemRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	MinStockLevel decimal.Decimal `json:"minStockLevel"`
}

// UpdateItemRequest defines the fields allowed when updating an item.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateItemRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	MinStockLevel *decimal.Decimal `json:"minStockLevel"`
}

// ItemResponse mirrors domain.InventoryItem.
type ItemResponse struct {
	ItemID         string          `json:"itemID"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	CurrentStock   decimal.Decimal `json:"currentStock"`
	MinStockLevel  decimal.Decimal `json:"minStockLevel"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	TotalSold      decimal.Decimal `json:"totalSold"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// ListItemsResponse wraps a list of items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.InventoryItem to its response DTO.
func ToItemResponse(item *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:         item.ItemID,
		Name:           item.Name,
		Category:       item.Category,
		UnitPrice:      item.UnitPrice,
		SalePrice:      item.SalePrice,
		CurrentStock:   item.CurrentStock,
		MinStockLevel:  item.MinStockLevel,
		TotalCollected: item.TotalCollected,
		TotalSold:      item.TotalSold,
		LastUpdated:    item.LastUpdated,
	}
}

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Name    string                `json:"name" binding:"required"`
	Phone   string                `json:"phone"`
	Address string                `json:"address"`
	Status  domain.SupplierStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateSupplierRequest defines the fields allowed when updating a supplier.
type UpdateSupplierRequest struct {
	Name    *string                `json:"name"`
	Phone   *string                `json:"phone"`
	Address *string                `json:"address"`
	Status  *domain.SupplierStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// SupplierResponse mirrors domain.Supplier.
type SupplierResponse struct {
	SupplierID       string                `json:"supplierID"`
	Name             string                `json:"name"`
	Phone            string                `json:"phone"`
	Address          string                `json:"address"`
	Status           domain.SupplierStatus `json:"status"`
	TotalCollections decimal.Decimal       `json:"totalCollections"`
	LastCollection   *time.Time            `json:"lastCollection,omitempty"`
}

// ListSuppliersResponse wraps a list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:       s.SupplierID,
		Name:             s.Name,
		Phone:            s.Phone,
		Address:          s.Address,
		Status:           s.Status,
		TotalCollections: s.TotalCollections,
		LastCollection:   s.LastCollection,
	}
}

// RecordCollectionRequest defines the data needed to record a purchase of
// waste paper from a supplier.
type RecordCollectionRequest struct {
	SupplierID string          `json:"supplierID" binding:"required"`
	ItemID     string          `json:"itemID" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"required"`
	Notes      string          `json:"notes"`
	Image      string          `json:"image"`
}

// RecordSaleRequest defines the data needed to record a resale of stock.
type RecordSaleRequest struct {
	ItemID        string               `json:"itemID" binding:"required"`
	Quantity      decimal.Decimal      `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal      `json:"unitPrice" binding:"required"`
	CustomerName  string               `json:"customerName"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,paymentmethod"`
}

// CollectionResponse mirrors domain.CollectionTransaction.
type CollectionResponse struct {
	TransactionID string          `json:"transactionID"`
	SupplierID    string          `json:"supplierID"`
	SupplierName  string          `json:"supplierName"`
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

// ToCollectionResponse converts a domain.CollectionTransaction to its response DTO.
func ToCollectionResponse(t *domain.CollectionTransaction) CollectionResponse {
	return CollectionResponse{
		TransactionID: t.TransactionID,
		SupplierID:    t.SupplierID,
		SupplierName:  t.SupplierName,
		ItemID:        t.ItemID,
		ItemName:      t.ItemName,
		Quantity:      t.Quantity,
		UnitPrice:     t.UnitPrice,
		TotalAmount:   t.TotalAmount,
		Notes:         t.Notes,
		Image:         t.Image,
		Date:          t.Date,
		ReceiptNumber: t.ReceiptNumber,
	}
}

// SaleResponse mirrors domain.SaleTransaction.
type SaleResponse struct {
	TransactionID string               `json:"transactionID"`
	ItemID        string               `json:"itemID"`
	ItemName      string               `json:"itemName"`
	Quantity      decimal.Decimal      `json:"quantity"`
	UnitPrice     decimal.Decimal      `json:"unitPrice"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	CustomerName  string               `json:"customerName,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Date          time.Time            `json:"date"`
	ReceiptNumber string               `json:"receiptNumber"`
}

// ToSaleResponse converts a domain.SaleTransaction to its response DTO.
func ToSaleResponse(t *domain.SaleTransaction) SaleResponse {
	return SaleResponse{
		TransactionID: t.TransactionID,
		ItemID:        t.ItemID,
		ItemName:      t.ItemName,
		Quantity:      t.Quantity,
		UnitPrice:     t.UnitPrice,
		TotalAmount:   t.TotalAmount,
		CustomerName:  t.CustomerName,
		PaymentMethod: t.PaymentMethod,
		Date:          t.Date,
		ReceiptNumber: t.ReceiptNumber,
	}
}

// ReceiptLineResponse mirrors domain.ReceiptLine.
type ReceiptLineResponse struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// ReceiptResponse mirrors domain.Receipt.
type ReceiptResponse struct {
	ReceiptID       string                `json:"receiptID"`
	ReceiptNumber   string                `json:"receiptNumber"`
	Type            domain.ReceiptType    `json:"type"`
	Lines           []ReceiptLineResponse `json:"lines"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	Date            time.Time             `json:"date"`
	CounterpartName string                `json:"counterpartName"`
	Notes           string                `json:"notes,omitempty"`
}

// ToReceiptResponse converts a domain.Receipt to its response DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	lines := make([]ReceiptLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = ReceiptLineResponse{
			Name:        l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalAmount: l.TotalAmount,
		}
	}
	return ReceiptResponse{
		ReceiptID:       r.ReceiptID,
		ReceiptNumber:   r.ReceiptNumber,
		Type:            r.Type,
		Lines:           lines,
		TotalAmount:     r.TotalAmount,
		Date:            r.Date,
		CounterpartName: r.CounterpartName,
		Notes:           r.Notes,
	}
}
