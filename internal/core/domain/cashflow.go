package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is one of the operation's cash or bank balances.
// Balances may go negative; overdraft is not floored.
type BankAccount struct {
	BankID      string          `json:"bankID"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// CashFlowTransaction is one ledger entry against a bank account. Exactly
// one of Debit/Credit carries the moved amount; the other is zero.
// Balance is the running ledger balance for that bank in insertion order,
// BankBalance the bank's absolute balance right after this entry.
type CashFlowTransaction struct {
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

// Payable is money the business owes a vendor.
// Pending is recomputed whenever Amount changes.
type Payable struct {
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

// ReceivableStatus tracks whether a receivable has been settled.
type ReceivableStatus string

const (
	ReceivablePaid   ReceivableStatus = "paid"
	ReceivableUnpaid ReceivableStatus = "unpaid"
)

// Receivable is money owed to the business by a customer.
type Receivable struct {
	ReceivableID string            `json:"receivableID"`
	Customer     string            `json:"customer"`
	Amount       decimal.Decimal   `json:"amount"`
	Status       ReceivableStatus  `json:"status"`
	DueDate      *time.Time        `json:"dueDate,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// FinancialSummary is a computed aggregate over banks, payables and
// receivables. It is re-derivable at any time and never persisted.
type FinancialSummary struct {
	TotalPayable          decimal.Decimal `json:"totalPayable"`
	TotalReceivable       decimal.Decimal `json:"totalReceivable"`
	TotalBankBalance      decimal.Decimal `json:"totalBankBalance"`
	CashBalance           decimal.Decimal `json:"cashBalance"`
	CashReceivableBalance decimal.Decimal `json:"cashReceivableBalance"`
	Difference            decimal.Decimal `json:"difference"`
}
