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

// cashFlowHandler handles HTTP requests for the cash-flow ledger.
type cashFlowHandler struct {
	cashFlowService portssvc.CashFlowSvcFacade
}

func newCashFlowHandler(svc portssvc.CashFlowSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{cashFlowService: svc}
}

// registerCashFlowRoutes registers routes related to banks, cash-flow
// transactions, payables, receivables and the financial summary.
func registerCashFlowRoutes(rg *gin.RouterGroup, svc portssvc.CashFlowSvcFacade) {
	h := newCashFlowHandler(svc)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.PUT("/:bankID/balance", h.updateBankBalance)
		banks.GET("/:bankID/transactions", h.listBankTransactions)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.recordTransaction)
		transactions.GET("", h.listTransactions)
	}

	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.PUT("/:payableID", h.updatePayable)
	}

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.PUT("/:receivableID", h.updateReceivable)
	}

	rg.GET("/summary", h.getFinancialSummary)
}

func (h *cashFlowHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	banks, err := h.cashFlowService.ListBanks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list banks from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list banks"})
		return
	}

	resp := make([]dto.BankResponse, len(banks))
	for i := range banks {
		resp[i] = dto.ToBankResponse(&banks[i])
	}
	c.JSON(http.StatusOK, dto.ListBanksResponse{Banks: resp})
}

func (h *cashFlowHandler) updateBankBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankID")

	var req dto.UpdateBankBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBankBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.cashFlowService.UpdateBankBalance(c.Request.Context(), bankID, req.Amount, req.IsDebit)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update bank balance in service", slog.String("error", err.Error()), slog.String("bank_id", bankID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bank balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

func (h *cashFlowHandler) listBankTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankID")

	entries, err := h.cashFlowService.ListBankTransactions(c.Request.Context(), bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
			return
		}
		logger.Error("Failed to list bank transactions from service", slog.String("error", err.Error()), slog.String("bank_id", bankID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bank transactions"})
		return
	}

	resp := make([]dto.CashFlowResponse, len(entries))
	for i := range entries {
		resp[i] = dto.ToCashFlowResponse(&entries[i])
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resp})
}

func (h *cashFlowHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.cashFlowService.RecordTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashFlowResponse(txn))
}

func (h *cashFlowHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.cashFlowService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	resp := make([]dto.CashFlowResponse, len(transactions))
	for i := range transactions {
		resp[i] = dto.ToCashFlowResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, gin.H{"transactions": resp})
}

func (h *cashFlowHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payable, err := h.cashFlowService.CreatePayable(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create payable in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payable"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

func (h *cashFlowHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payables, err := h.cashFlowService.ListPayables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payables from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payables"})
		return
	}

	resp := make([]dto.PayableResponse, len(payables))
	for i := range payables {
		resp[i] = dto.ToPayableResponse(&payables[i])
	}
	c.JSON(http.StatusOK, gin.H{"payables": resp})
}

func (h *cashFlowHandler) updatePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("payableID")

	var req dto.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payable, err := h.cashFlowService.UpdatePayable(c.Request.Context(), payableID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payable not found"})
			return
		}
		logger.Error("Failed to update payable in service", slog.String("error", err.Error()), slog.String("payable_id", payableID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

func (h *cashFlowHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.cashFlowService.CreateReceivable(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create receivable in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create receivable"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceivableResponse(receivable))
}

func (h *cashFlowHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receivables, err := h.cashFlowService.ListReceivables(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list receivables from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receivables"})
		return
	}

	resp := make([]dto.ReceivableResponse, len(receivables))
	for i := range receivables {
		resp[i] = dto.ToReceivableResponse(&receivables[i])
	}
	c.JSON(http.StatusOK, gin.H{"receivables": resp})
}

func (h *cashFlowHandler) updateReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("receivableID")

	var req dto.UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receivable, err := h.cashFlowService.UpdateReceivable(c.Request.Context(), receivableID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receivable not found"})
			return
		}
		logger.Error("Failed to update receivable in service", slog.String("error", err.Error()), slog.String("receivable_id", receivableID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update receivable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

func (h *cashFlowHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.cashFlowService.ComputeFinancialSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute financial summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute financial summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}
