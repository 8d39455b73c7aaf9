package services

import (
	"context"

	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
	"github.com/scrapdesk/scrap_ledger_app/internal/dto"
)

// InventoryReaderSvc defines read operations over the inventory ledger.
type InventoryReaderSvc interface {
	// ListItems returns the current snapshot of inventory items.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ListLowStockItems returns items whose stock is at or below their minimum level.
	ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ListSuppliers returns the current snapshot of suppliers.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// ListCollections returns all recorded collection transactions.
	ListCollections(ctx context.Context) ([]domain.CollectionTransaction, error)

	// ListSales returns all recorded sale transactions.
	ListSales(ctx context.Context) ([]domain.SaleTransaction, error)

	// ListReceipts returns all receipts.
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)

	// FindReceipt looks a receipt up by its receipt number.
	FindReceipt(ctx context.Context, receiptNumber string) (*domain.Receipt, error)
}

// InventoryWriterSvc defines mutating operations over the inventory ledger.
type InventoryWriterSvc interface {
	// CreateItem registers a new inventory item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.InventoryItem, error)

	// UpdateItem merges the provided fields into an existing item.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.InventoryItem, error)

	// CreateSupplier registers a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)

	// UpdateSupplier merges the provided fields into an existing supplier.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)

	// RecordCollection records a stock-increasing purchase and emits its receipt.
	RecordCollection(ctx context.Context, req dto.RecordCollectionRequest) (*domain.CollectionTransaction, error)

	// RecordSale records a stock-decreasing sale and emits its receipt.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SaleTransaction, error)
}

// InventorySvcFacade combines all inventory ledger operations.
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
