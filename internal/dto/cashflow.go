package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
)

// BankResponse mirrors domain.BankAccount.
type BankResponse struct {
	BankID      string          `json:"bankID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ListBanksResponse wraps a list of bank accounts.
type ListBanksResponse struct {
	Banks []BankResponse `json:"banks"`
}

// ToBankResponse converts a domain.BankAccount to its response DTO.
func ToBankResponse(b *domain.BankAccount) BankResponse {
	return BankResponse{
		BankID:      b.BankID,
		Name:        b.Name,
		Balance:     b.Balance,
		LastUpdated: b.LastUpdated,
	}
}

// UpdateBankBalanceRequest adjusts a bank balance by an absolute amount.
type UpdateBankBalanceRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	IsDebit bool            `json:"isDebit"`
}

// RecordCashFlowRequest defines the data needed to append a ledger entry
// against a bank account. Exactly one of Debit/Credit should be positive.
type RecordCashFlowRequest struct {
	BankID      string          `json:"bankID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        *time.Time      `json:"date"`
}

// CashFlowResponse mirrors domain.CashFlowTransaction.
type CashFlowResponse struct {
	TransactionID string          `json:"transactionID"`
	BankID        string          `json:"bankID"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	BankBalance   decimal.Decimal `json:"bankBalance"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToCashFlowResponse converts a domain.CashFlowTransaction to its response DTO.
func ToCashFlowResponse(t *domain.CashFlowTransaction) CashFlowResponse {
	return CashFlowResponse{
		TransactionID: t.TransactionID,
		BankID:        t.BankID,
		Description:   t.Description,
		Category:      t.Category,
		Debit:         t.Debit,
		Credit:        t.Credit,
		Balance:       t.Balance,
		BankBalance:   t.BankBalance,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
	}
}

// CreatePayableRequest defines the data needed to record money we owe.
type CreatePayableRequest struct {
	Vendor  string            `json:"vendor" binding:"required"`
	Amount  decimal.Decimal   `json:"amount" binding:"required"`
	Paid    decimal.Decimal   `json:"paid"`
	DueDate *time.Time        `json:"dueDate"`
	Notes   string            `json:"notes"`
	Extra   map[string]string `json:"extra"`
}

// UpdatePayableRequest defines the fields allowed when updating a payable.
type UpdatePayableRequest struct {
	Vendor  *string           `json:"vendor"`
	Amount  *decimal.Decimal  `json:"amount"`
	Paid    *decimal.Decimal  `json:"paid"`
	DueDate *time.Time        `json:"dueDate"`
	Notes   *string           `json:"notes"`
	Extra   map[string]string `json:"extra"`
}

// PayableResponse mirrors domain.Payable.
type PayableResponse struct {
	PayableID string            `json:"payableID"`
	Vendor    string            `json:"vendor"`
	Amount    decimal.Decimal   `json:"amount"`
	Paid      decimal.Decimal   `json:"paid"`
	Pending   decimal.Decimal   `json:"pending"`
	DueDate   *time.Time        `json:"dueDate,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToPayableResponse converts a domain.Payable to its response DTO.
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID: p.PayableID,
		Vendor:    p.Vendor,
		Amount:    p.Amount,
		Paid:      p.Paid,
		Pending:   p.Pending,
		DueDate:   p.DueDate,
		Notes:     p.Notes,
		Extra:     p.Extra,
		CreatedAt: p.CreatedAt,
	}
}

// CreateReceivableRequest defines the data needed to record money owed to us.
type CreateReceivableRequest struct {
	Customer string                  `json:"customer" binding:"required"`
	Amount   decimal.Decimal         `json:"amount" binding:"required"`
	Status   domain.ReceivableStatus `json:"status" binding:"omitempty,oneof=paid unpaid"`
	DueDate  *time.Time              `json:"dueDate"`
	Notes    string                  `json:"notes"`
	Extra    map[string]string       `json:"extra"`
}

// UpdateReceivableRequest defines the fields allowed when updating a receivable.
type UpdateReceivableRequest struct {
	Customer *string                  `json:"customer"`
	Amount   *decimal.Decimal         `json:"amount"`
	Status   *domain.ReceivableStatus `json:"status" binding:"omitempty,oneof=paid unpaid"`
	DueDate  *time.Time               `json:"dueDate"`
	Notes    *string                  `json:"notes"`
	Extra    map[string]string        `json:"extra"`
}

// ReceivableResponse mirrors domain.Receivable.
type ReceivableResponse struct {
	ReceivableID string                  `json:"receivableID"`
	Customer     string                  `json:"customer"`
	Amount       decimal.Decimal         `json:"amount"`
	Status       domain.ReceivableStatus `json:"status"`
	DueDate      *time.Time              `json:"dueDate,omitempty"`
	Notes        string                  `json:"notes,omitempty"`
	Extra        map[string]string       `json:"extra,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// ToReceivableResponse converts a domain.Receivable to its response DTO.
func ToReceivableResponse(r *domain.Receivable) ReceivableResponse {
	return ReceivableResponse{
		ReceivableID: r.ReceivableID,
		Customer:     r.Customer,
		Amount:       r.Amount,
		Status:       r.Status,
		DueDate:      r.DueDate,
		Notes:        r.Notes,
		Extra:        r.Extra,
		CreatedAt:    r.CreatedAt,
	}
}

// FinancialSummaryResponse mirrors domain.FinancialSummary.
type FinancialSummaryResponse struct {
	TotalPayable          decimal.Decimal `json:"totalPayable"`
	TotalReceivable       decimal.Decimal `json:"totalReceivable"`
	TotalBankBalance      decimal.Decimal `json:"totalBankBalance"`
	CashBalance           decimal.Decimal `json:"cashBalance"`
	CashReceivableBalance decimal.Decimal `json:"cashReceivableBalance"`
	Difference            decimal.Decimal `json:"difference"`
}

// ToFinancialSummaryResponse converts a domain.FinancialSummary to its response DTO.
func ToFinancialSummaryResponse(s *domain.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalPayable:          s.TotalPayable,
		TotalReceivable:       s.TotalReceivable,
		TotalBankBalance:      s.TotalBankBalance,
		CashBalance:           s.CashBalance,
		CashReceivableBalance: s.CashReceivableBalance,
		Difference:            s.Difference,
	}
}
