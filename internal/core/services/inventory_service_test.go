package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
	portsrepo "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/services"
	"github.com/scrapdesk/scrap_ledger_app/internal/core/services"
	"github.com/scrapdesk/scrap_ledger_app/internal/dto"
	"github.com/scrapdesk/scrap_ledger_app/internal/repositories/storage"
)

// --- Test Suite Setup ---

type InventoryServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *storage.MemoryStore
	service portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = storage.NewMemoryStore()
	suite.service = services.NewInventoryService(suite.store)
}

func (suite *InventoryServiceTestSuite) mustCreateItem(stock int64) *domain.InventoryItem {
	item, err := suite.service.CreateItem(suite.ctx, dto.CreateItemRequest{
		Name:          "Mixed Office Paper",
		Category:      "paper",
		UnitPrice:     decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(20),
		CurrentStock:  decimal.NewFromInt(stock),
		MinStockLevel: decimal.NewFromInt(5),
	})
	suite.Require().NoError(err)
	return item
}

func (suite *InventoryServiceTestSuite) mustCreateSupplier() *domain.Supplier {
	supplier, err := suite.service.CreateSupplier(suite.ctx, dto.CreateSupplierRequest{
		Name:  "City Scrap Traders",
		Phone: "555-0101",
	})
	suite.Require().NoError(err)
	return supplier
}

// --- Items ---

func (suite *InventoryServiceTestSuite) TestCreateItem_Success() {
	item := suite.mustCreateItem(10)

	suite.NotEmpty(item.ItemID)
	suite.Equal("Mixed Office Paper", item.Name)
	suite.True(item.CurrentStock.Equal(decimal.NewFromInt(10)))
	suite.True(item.TotalCollected.IsZero())
	suite.True(item.TotalSold.IsZero())
	suite.WithinDuration(time.Now(), item.LastUpdated, time.Second)

	items, err := suite.service.ListItems(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.Equal(item.ItemID, items[0].ItemID)
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_MergesProvidedFields() {
	item := suite.mustCreateItem(10)

	newName := "Old Newspapers"
	newSalePrice := decimal.NewFromInt(25)
	updated, err := suite.service.UpdateItem(suite.ctx, item.ItemID, dto.UpdateItemRequest{
		Name:      &newName,
		SalePrice: &newSalePrice,
	})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.True(updated.SalePrice.Equal(newSalePrice))
	// Untouched fields survive the merge.
	suite.Equal("paper", updated.Category)
	suite.True(updated.CurrentStock.Equal(decimal.NewFromInt(10)))
}

func (suite *InventoryServiceTestSuite) TestUpdateItem_NotFound() {
	_, err := suite.service.UpdateItem(suite.ctx, "missing-id", dto.UpdateItemRequest{})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InventoryServiceTestSuite) TestListLowStockItems() {
	item := suite.mustCreateItem(10)
	_, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        item.ItemID,
		Quantity:      decimal.NewFromInt(6),
		UnitPrice:     decimal.NewFromInt(20),
		PaymentMethod: domain.PaymentCash,
	})
	suite.Require().NoError(err)

	low, err := suite.service.ListLowStockItems(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(low, 1)
	suite.Equal(item.ItemID, low[0].ItemID)
}

// --- Suppliers ---

func (suite *InventoryServiceTestSuite) TestCreateSupplier_DefaultsToActive() {
	supplier := suite.mustCreateSupplier()
	suite.Equal(domain.SupplierActive, supplier.Status)
	suite.True(supplier.TotalCollections.IsZero())
	suite.Nil(supplier.LastCollection)
}

func (suite *InventoryServiceTestSuite) TestUpdateSupplier_NotFound() {
	_, err := suite.service.UpdateSupplier(suite.ctx, "missing-id", dto.UpdateSupplierRequest{})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Collections ---

func (suite *InventoryServiceTestSuite) TestRecordCollection_Success() {
	item := suite.mustCreateItem(10)
	supplier := suite.mustCreateSupplier()

	txn, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
		SupplierID: supplier.SupplierID,
		ItemID:     item.ItemID,
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(10),
	})

	suite.Require().NoError(err)
	suite.True(txn.TotalAmount.Equal(decimal.NewFromInt(50)))
	suite.True(strings.HasPrefix(txn.ReceiptNumber, "COL-"))
	suite.Equal(item.Name, txn.ItemName)
	suite.Equal(supplier.Name, txn.SupplierName)

	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.Equal(decimal.NewFromInt(15)))
	suite.True(items[0].TotalCollected.Equal(decimal.NewFromInt(5)))

	suppliers, _ := suite.service.ListSuppliers(suite.ctx)
	suite.True(suppliers[0].TotalCollections.Equal(decimal.NewFromInt(50)))
	suite.Require().NotNil(suppliers[0].LastCollection)
	suite.WithinDuration(time.Now(), *suppliers[0].LastCollection, time.Second)
}

func (suite *InventoryServiceTestSuite) TestRecordCollection_EmitsPairedReceipt() {
	item := suite.mustCreateItem(10)
	supplier := suite.mustCreateSupplier()

	txn, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
		SupplierID: supplier.SupplierID,
		ItemID:     item.ItemID,
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(10),
	})
	suite.Require().NoError(err)

	receipts, err := suite.service.ListReceipts(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(receipts, 1)
	suite.Equal(txn.ReceiptNumber, receipts[0].ReceiptNumber)
	suite.Equal(domain.ReceiptCollection, receipts[0].Type)
	suite.Equal(supplier.Name, receipts[0].CounterpartName)

	found, err := suite.service.FindReceipt(suite.ctx, txn.ReceiptNumber)
	suite.Require().NoError(err)
	suite.True(found.TotalAmount.Equal(txn.TotalAmount))
}

func (suite *InventoryServiceTestSuite) TestRecordCollection_NonPositiveQuantity() {
	item := suite.mustCreateItem(10)
	supplier := suite.mustCreateSupplier()

	_, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
		SupplierID: supplier.SupplierID,
		ItemID:     item.ItemID,
		Quantity:   decimal.Zero,
		UnitPrice:  decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Nothing was recorded.
	collections, _ := suite.service.ListCollections(suite.ctx)
	suite.Empty(collections)
	receipts, _ := suite.service.ListReceipts(suite.ctx)
	suite.Empty(receipts)
}

func (suite *InventoryServiceTestSuite) TestRecordCollection_UnknownSupplierStillProceeds() {
	item := suite.mustCreateItem(10)

	txn, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
		SupplierID: "no-such-supplier",
		ItemID:     item.ItemID,
		Quantity:   decimal.NewFromInt(3),
		UnitPrice:  decimal.NewFromInt(10),
	})

	suite.Require().NoError(err)
	suite.Empty(txn.SupplierName)

	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.Equal(decimal.NewFromInt(13)))

	collections, _ := suite.service.ListCollections(suite.ctx)
	suite.Len(collections, 1)
}

func (suite *InventoryServiceTestSuite) TestRecordCollection_Additivity() {
	item := suite.mustCreateItem(0)
	supplier := suite.mustCreateSupplier()

	quantities := []int64{5, 3, 7}
	for _, q := range quantities {
		_, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
			SupplierID: supplier.SupplierID,
			ItemID:     item.ItemID,
			Quantity:   decimal.NewFromInt(q),
			UnitPrice:  decimal.NewFromInt(10),
		})
		suite.Require().NoError(err)
	}

	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.Equal(decimal.NewFromInt(15)))
	suite.True(items[0].TotalCollected.Equal(decimal.NewFromInt(15)))
}

// --- Sales ---

func (suite *InventoryServiceTestSuite) TestRecordSale_Success() {
	item := suite.mustCreateItem(10)

	txn, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        item.ItemID,
		Quantity:      decimal.NewFromInt(4),
		UnitPrice:     decimal.NewFromInt(20),
		CustomerName:  "Paper Mill Ltd",
		PaymentMethod: domain.PaymentBank,
	})

	suite.Require().NoError(err)
	suite.True(txn.TotalAmount.Equal(decimal.NewFromInt(80)))
	suite.True(strings.HasPrefix(txn.ReceiptNumber, "SAL-"))

	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.Equal(decimal.NewFromInt(6)))
	suite.True(items[0].TotalSold.Equal(decimal.NewFromInt(4)))

	found, err := suite.service.FindReceipt(suite.ctx, txn.ReceiptNumber)
	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptSale, found.Type)
	suite.Equal("Paper Mill Ltd", found.CounterpartName)
}

func (suite *InventoryServiceTestSuite) TestRecordSale_InsufficientStock() {
	item := suite.mustCreateItem(10)

	_, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        item.ItemID,
		Quantity:      decimal.NewFromInt(12),
		UnitPrice:     decimal.NewFromInt(20),
		PaymentMethod: domain.PaymentCash,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)

	// Item, sales and receipts are all untouched.
	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.Equal(decimal.NewFromInt(10)))
	suite.True(items[0].TotalSold.IsZero())
	sales, _ := suite.service.ListSales(suite.ctx)
	suite.Empty(sales)
	receipts, _ := suite.service.ListReceipts(suite.ctx)
	suite.Empty(receipts)
}

func (suite *InventoryServiceTestSuite) TestRecordSale_UnknownItem() {
	_, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        "no-such-item",
		Quantity:      decimal.NewFromInt(1),
		UnitPrice:     decimal.NewFromInt(20),
		PaymentMethod: domain.PaymentCash,
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

// TestStockLifecycle walks a reject-collect-sell sequence and checks stock
// never dips below zero along the way.
func (suite *InventoryServiceTestSuite) TestStockLifecycle() {
	item := suite.mustCreateItem(10)
	supplier := suite.mustCreateSupplier()

	// Oversized sale is rejected outright.
	_, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        item.ItemID,
		Quantity:      decimal.NewFromInt(12),
		UnitPrice:     decimal.NewFromInt(20),
		PaymentMethod: domain.PaymentCash,
	})
	suite.Require().ErrorIs(err, apperrors.ErrInsufficientStock)

	// Collection brings stock to 15.
	colTxn, err := suite.service.RecordCollection(suite.ctx, dto.RecordCollectionRequest{
		SupplierID: supplier.SupplierID,
		ItemID:     item.ItemID,
		Quantity:   decimal.NewFromInt(5),
		UnitPrice:  decimal.NewFromInt(10),
	})
	suite.Require().NoError(err)
	suite.True(colTxn.TotalAmount.Equal(decimal.NewFromInt(50)))

	// Selling everything drains stock to exactly zero.
	saleTxn, err := suite.service.RecordSale(suite.ctx, dto.RecordSaleRequest{
		ItemID:        item.ItemID,
		Quantity:      decimal.NewFromInt(15),
		UnitPrice:     decimal.NewFromInt(20),
		PaymentMethod: domain.PaymentMobile,
	})
	suite.Require().NoError(err)
	suite.True(saleTxn.TotalAmount.Equal(decimal.NewFromInt(300)))

	items, _ := suite.service.ListItems(suite.ctx)
	suite.True(items[0].CurrentStock.IsZero())
	suite.True(items[0].TotalCollected.Equal(decimal.NewFromInt(5)))
	suite.True(items[0].TotalSold.Equal(decimal.NewFromInt(15)))

	receipts, _ := suite.service.ListReceipts(suite.ctx)
	suite.Len(receipts, 2)
}

// --- Receipts ---

func (suite *InventoryServiceTestSuite) TestFindReceipt_NotFound() {
	_, err := suite.service.FindReceipt(suite.ctx, "COL-000000-XYZ")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Corrupt store fallback ---

func (suite *InventoryServiceTestSuite) TestListItems_CorruptSnapshotFallsBackToEmpty() {
	err := suite.store.Save(suite.ctx, portsrepo.KeyInventoryItems, []byte("{definitely not json"))
	suite.Require().NoError(err)

	items, err := suite.service.ListItems(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(items)
}

// --- Run Test Suite ---

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
