package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	portssvc "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/services"
	"github.com/scrapdesk/scrap_ledger_app/internal/dto"
	"github.com/scrapdesk/scrap_ledger_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for the inventory ledger.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(svc portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: svc}
}

// registerInventoryRoutes registers routes related to items, suppliers,
// collections, sales and receipts.
func registerInventoryRoutes(rg *gin.RouterGroup, svc portssvc.InventorySvcFacade) {
	h := newInventoryHandler(svc)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/low-stock", h.listLowStockItems)
		items.PUT("/:itemID", h.updateItem)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.PUT("/:supplierID", h.updateSupplier)
	}

	collections := rg.Group("/collections")
	{
		collections.POST("", h.recordCollection)
		collections.GET("", h.listCollections)
	}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
	}

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receiptNumber", h.findReceipt)
	}
}

func (h *inventoryHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *inventoryHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	resp := make([]dto.ItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, dto.ListItemsResponse{Items: resp})
}

func (h *inventoryHandler) listLowStockItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.inventoryService.ListLowStockItems(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list low-stock items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list low-stock items"})
		return
	}

	resp := make([]dto.ItemResponse, len(items))
	for i := range items {
		resp[i] = dto.ToItemResponse(&items[i])
	}
	c.JSON(http.StatusOK, dto.ListItemsResponse{Items: resp})
}

func (h *inventoryHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to update item in service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

func (h *inventoryHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.inventoryService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create supplier in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *inventoryHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suppliers, err := h.inventoryService.ListSuppliers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suppliers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suppliers"})
		return
	}

	resp := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		resp[i] = dto.ToSupplierResponse(&suppliers[i])
	}
	c.JSON(http.StatusOK, dto.ListSuppliersResponse{Suppliers: resp})
}

func (h *inventoryHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSupplier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.inventoryService.UpdateSupplier(c.Request.Context(), supplierID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
			return
		}
		logger.Error("Failed to update supplier in service", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *inventoryHandler) recordCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCollection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.inventoryService.RecordCollection(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording collection", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record collection in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record collection"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCollectionResponse(txn))
}

func (h *inventoryHandler) listCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	collections, err := h.inventoryService.ListCollections(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list collections from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list collections"})
		return
	}

	resp := make([]dto.CollectionResponse, len(collections))
	for i := range collections {
		resp[i] = dto.ToCollectionResponse(&collections[i])
	}
	c.JSON(http.StatusOK, gin.H{"collections": resp})
}

func (h *inventoryHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.inventoryService.RecordSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.Warn("Sale rejected for insufficient stock", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record sale in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(txn))
}

func (h *inventoryHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sales, err := h.inventoryService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		return
	}

	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = dto.ToSaleResponse(&sales[i])
	}
	c.JSON(http.StatusOK, gin.H{"sales": resp})
}

func (h *inventoryHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipts, err := h.inventoryService.ListReceipts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list receipts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	resp := make([]dto.ReceiptResponse, len(receipts))
	for i := range receipts {
		resp[i] = dto.ToReceiptResponse(&receipts[i])
	}
	c.JSON(http.StatusOK, gin.H{"receipts": resp})
}

func (h *inventoryHandler) findReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptNumber := c.Param("receiptNumber")

	receipt, err := h.inventoryService.FindReceipt(c.Request.Context(), receiptNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to find receipt in service", slog.String("error", err.Error()), slog.String("receipt_number", receiptNumber))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
