package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
	"github.com/scrapdesk/scrap_ledger_app/internal/dto"
)

// CashFlowReaderSvc defines read operations over the cash-flow ledger.
type CashFlowReaderSvc interface {
	// ListBanks returns all bank accounts, seeding the default set on first use.
	ListBanks(ctx context.Context) ([]domain.BankAccount, error)

	// ListTransactions returns the full cash-flow ledger in insertion order.
	ListTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error)

	// ListBankTransactions returns one bank's ledger entries in insertion order.
	ListBankTransactions(ctx context.Context, bankID string) ([]domain.CashFlowTransaction, error)

	// ListPayables returns all payables.
	ListPayables(ctx context.Context) ([]domain.Payable, error)

	// ListReceivables returns all receivables.
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)

	// ComputeFinancialSummary aggregates banks, payables and receivables.
	// It has no side effects and is re-derivable at any time.
	ComputeFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error)
}

// CashFlowWriterSvc defines mutating operations over the cash-flow ledger.
type CashFlowWriterSvc interface {
	// UpdateBankBalance applies a debit or credit to a bank's absolute balance.
	UpdateBankBalance(ctx context.Context, bankID string, amount decimal.Decimal, isDebit bool) (*domain.BankAccount, error)

	// RecordTransaction appends a ledger entry, updating the bank balance and
	// the bank's running ledger balance.
	RecordTransaction(ctx context.Context, req dto.RecordCashFlowRequest) (*domain.CashFlowTransaction, error)

	// CreatePayable records money owed to a vendor.
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error)

	// UpdatePayable merges the provided fields into an existing payable.
	UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest) (*domain.Payable, error)

	// CreateReceivable records money owed by a customer.
	CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error)

	// UpdateReceivable merges the provided fields into an existing receivable.
	UpdateReceivable(ctx context.Context, receivableID string, req dto.UpdateReceivableRequest) (*domain.Receivable, error)
}

// CashFlowSvcFacade combines all cash-flow ledger operations.
type CashFlowSvcFacade interface {
	CashFlowReaderSvc
	CashFlowWriterSvc
}
