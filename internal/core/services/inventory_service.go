package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/services"
	"github.com/scrapdesk/scrap_ledger_app/internal/dto"
	"github.com/scrapdesk/scrap_ledger_app/internal/repositories/storage"
	"github.com/scrapdesk/scrap_ledger_app/internal/utils"
)

// inventoryServiceImpl implements the InventorySvcFacade interface over a
// snapshot store. The mutex serializes every read-modify-write cycle so
// concurrent callers cannot oversell stock through a lost update.
type inventoryServiceImpl struct {
	BaseService
	mu    sync.Mutex
	store portsrepo.SnapshotStore
}

// NewInventoryService creates a new inventory ledger over the given store.
func NewInventoryService(store portsrepo.SnapshotStore) portssvc.InventorySvcFacade {
	return &inventoryServiceImpl{store: store}
}

// Ensure inventoryServiceImpl implements the InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryServiceImpl)(nil)

func (s *inventoryServiceImpl) loadItems(ctx context.Context) []domain.InventoryItem {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyInventoryItems, []domain.InventoryItem{})
}

func (s *inventoryServiceImpl) loadSuppliers(ctx context.Context) []domain.Supplier {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeySuppliers, []domain.Supplier{})
}

func (s *inventoryServiceImpl) loadCollections(ctx context.Context) []domain.CollectionTransaction {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyCollectionTransactions, []domain.CollectionTransaction{})
}

func (s *inventoryServiceImpl) loadSales(ctx context.Context) []domain.SaleTransaction {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeySaleTransactions, []domain.SaleTransaction{})
}

func (s *inventoryServiceImpl) loadReceipts(ctx context.Context) []domain.Receipt {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyReceipts, []domain.Receipt{})
}

func (s *inventoryServiceImpl) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadItems(ctx), nil
}

func (s *inventoryServiceImpl) ListLowStockItems(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	low := make([]domain.InventoryItem, 0)
	for _, item := range s.loadItems(ctx) {
		if item.CurrentStock.LessThanOrEqual(item.MinStockLevel) {
			low = append(low, item)
		}
	}
	return low, nil
}

func (s *inventoryServiceImpl) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSuppliers(ctx), nil
}

func (s *inventoryServiceImpl) ListCollections(ctx context.Context) ([]domain.CollectionTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCollections(ctx), nil
}

func (s *inventoryServiceImpl) ListSales(ctx context.Context) ([]domain.SaleTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadSales(ctx), nil
}

func (s *inventoryServiceImpl) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadReceipts(ctx), nil
}

func (s *inventoryServiceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item := domain.InventoryItem{
		ItemID:         uuid.NewString(),
		Name:           req.Name,
		Category:       req.Category,
		UnitPrice:      req.UnitPrice,
		SalePrice:      req.SalePrice,
		CurrentStock:   req.CurrentStock,
		MinStockLevel:  req.MinStockLevel,
		TotalCollected: decimal.Zero,
		TotalSold:      decimal.Zero,
		LastUpdated:    now,
	}

	items := append(s.loadItems(ctx), item)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyInventoryItems, items); err != nil {
		s.LogError(ctx, err, "Failed to save new item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item created successfully", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	return &item, nil
}

func (s *inventoryServiceImpl) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.loadItems(ctx)
	idx := -1
	for i := range items {
		if items[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, apperrors.ErrNotFound)
	}

	item := &items[idx]
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.SalePrice != nil {
		item.SalePrice = *req.SalePrice
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}
	item.LastUpdated = time.Now().UTC()

	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyInventoryItems, items); err != nil {
		s.LogError(ctx, err, "Failed to save updated item", slog.String("item_id", itemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item updated successfully", slog.String("item_id", itemID))
	updated := items[idx]
	return &updated, nil
}

func (s *inventoryServiceImpl) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := req.Status
	if status == "" {
		status = domain.SupplierActive
	}
	supplier := domain.Supplier{
		SupplierID:       uuid.NewString(),
		Name:             req.Name,
		Phone:            req.Phone,
		Address:          req.Address,
		Status:           status,
		TotalCollections: decimal.Zero,
	}

	suppliers := append(s.loadSuppliers(ctx), supplier)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeySuppliers, suppliers); err != nil {
		s.LogError(ctx, err, "Failed to save new supplier", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created successfully", slog.String("supplier_id", supplier.SupplierID), slog.String("name", supplier.Name))
	return &supplier, nil
}

func (s *inventoryServiceImpl) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suppliers := s.loadSuppliers(ctx)
	idx := -1
	for i := range suppliers {
		if suppliers[i].SupplierID == supplierID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("supplier %s: %w", supplierID, apperrors.ErrNotFound)
	}

	supplier := &suppliers[idx]
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}

	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeySuppliers, suppliers); err != nil {
		s.LogError(ctx, err, "Failed to save updated supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier updated successfully", slog.String("supplier_id", supplierID))
	updated := suppliers[idx]
	return &updated, nil
}

// RecordCollection records a purchase of waste paper: it bumps the item's
// stock, credits the supplier's cumulative total, appends the transaction
// and emits a matching receipt. Item and supplier updates are best-effort:
// an unresolved supplier id does not abort the recording.
func (s *inventoryServiceImpl) RecordCollection(ctx context.Context, req dto.RecordCollectionRequest) (*domain.CollectionTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.Quantity.IsPositive() || !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and unit price must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	totalAmount := req.Quantity.Mul(req.UnitPrice)

	receiptNumber, err := utils.GenerateReceiptNumber(utils.ReceiptPrefixCollection)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate receipt number")
		return nil, err
	}

	itemName := ""
	items := s.loadItems(ctx)
	for i := range items {
		if items[i].ItemID != req.ItemID {
			continue
		}
		items[i].CurrentStock = items[i].CurrentStock.Add(req.Quantity)
		items[i].TotalCollected = items[i].TotalCollected.Add(req.Quantity)
		items[i].LastUpdated = now
		itemName = items[i].Name
		if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyInventoryItems, items); err != nil {
			s.LogError(ctx, err, "Failed to save items during collection", slog.String("item_id", req.ItemID))
			return nil, err
		}
		break
	}

	supplierName := ""
	suppliers := s.loadSuppliers(ctx)
	for i := range suppliers {
		if suppliers[i].SupplierID != req.SupplierID {
			continue
		}
		suppliers[i].TotalCollections = suppliers[i].TotalCollections.Add(totalAmount)
		last := now
		suppliers[i].LastCollection = &last
		supplierName = suppliers[i].Name
		if err := storage.SaveCollection(ctx, s.store, portsrepo.KeySuppliers, suppliers); err != nil {
			s.LogError(ctx, err, "Failed to save suppliers during collection", slog.String("supplier_id", req.SupplierID))
			return nil, err
		}
		break
	}

	txn := domain.CollectionTransaction{
		TransactionID: uuid.NewString(),
		SupplierID:    req.SupplierID,
		SupplierName:  supplierName,
		ItemID:        req.ItemID,
		ItemName:      itemName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalAmount:   totalAmount,
		Notes:         req.Notes,
		Image:         req.Image,
		Date:          now,
		ReceiptNumber: receiptNumber,
	}
	collections := append(s.loadCollections(ctx), txn)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyCollectionTransactions, collections); err != nil {
		s.LogError(ctx, err, "Failed to save collection transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	if err := s.appendReceipt(ctx, domain.Receipt{
		ReceiptID:     uuid.NewString(),
		ReceiptNumber: receiptNumber,
		Type:          domain.ReceiptCollection,
		Lines: []domain.ReceiptLine{{
			Name:        itemName,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			TotalAmount: totalAmount,
		}},
		TotalAmount:     totalAmount,
		Date:            now,
		CounterpartName: supplierName,
		Notes:           req.Notes,
	}); err != nil {
		s.LogError(ctx, err, "Failed to save receipt for collection", slog.String("receipt_number", receiptNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Collection recorded successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("receipt_number", receiptNumber),
		slog.String("total_amount", totalAmount.String()))
	return &txn, nil
}

// RecordSale records a resale of stock. The sale is rejected before any
// mutation when the item is unknown or its stock would go negative.
func (s *inventoryServiceImpl) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SaleTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !req.Quantity.IsPositive() || !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: quantity and unit price must be positive", apperrors.ErrValidation)
	}

	items := s.loadItems(ctx)
	idx := -1
	for i := range items {
		if items[i].ItemID == req.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 || items[idx].CurrentStock.LessThan(req.Quantity) {
		return nil, fmt.Errorf("%w: item %s", apperrors.ErrInsufficientStock, req.ItemID)
	}

	now := time.Now().UTC()
	items[idx].CurrentStock = items[idx].CurrentStock.Sub(req.Quantity)
	items[idx].TotalSold = items[idx].TotalSold.Add(req.Quantity)
	items[idx].LastUpdated = now
	itemName := items[idx].Name
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyInventoryItems, items); err != nil {
		s.LogError(ctx, err, "Failed to save items during sale", slog.String("item_id", req.ItemID))
		return nil, err
	}

	receiptNumber, err := utils.GenerateReceiptNumber(utils.ReceiptPrefixSale)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate receipt number")
		return nil, err
	}

	totalAmount := req.Quantity.Mul(req.UnitPrice)
	txn := domain.SaleTransaction{
		TransactionID: uuid.NewString(),
		ItemID:        req.ItemID,
		ItemName:      itemName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalAmount:   totalAmount,
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		Date:          now,
		ReceiptNumber: receiptNumber,
	}
	sales := append(s.loadSales(ctx), txn)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeySaleTransactions, sales); err != nil {
		s.LogError(ctx, err, "Failed to save sale transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	if err := s.appendReceipt(ctx, domain.Receipt{
		ReceiptID:     uuid.NewString(),
		ReceiptNumber: receiptNumber,
		Type:          domain.ReceiptSale,
		Lines: []domain.ReceiptLine{{
			Name:        itemName,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			TotalAmount: totalAmount,
		}},
		TotalAmount:     totalAmount,
		Date:            now,
		CounterpartName: req.CustomerName,
	}); err != nil {
		s.LogError(ctx, err, "Failed to save receipt for sale", slog.String("receipt_number", receiptNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("receipt_number", receiptNumber),
		slog.String("total_amount", totalAmount.String()))
	return &txn, nil
}

func (s *inventoryServiceImpl) appendReceipt(ctx context.Context, receipt domain.Receipt) error {
	receipts := append(s.loadReceipts(ctx), receipt)
	return storage.SaveCollection(ctx, s.store, portsrepo.KeyReceipts, receipts)
}

func (s *inventoryServiceImpl) FindReceipt(ctx context.Context, receiptNumber string) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, receipt := range s.loadReceipts(ctx) {
		if receipt.ReceiptNumber == receiptNumber {
			found := receipt
			return &found, nil
		}
	}
	return nil, fmt.Errorf("receipt %s: %w", receiptNumber, apperrors.ErrNotFound)
}
