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
)

// cashFlowServiceImpl implements the CashFlowSvcFacade interface over a
// snapshot store. The mutex serializes read-modify-write cycles the same
// way the inventory ledger does.
type cashFlowServiceImpl struct {
	BaseService
	mu    sync.Mutex
	store portsrepo.SnapshotStore
}

// NewCashFlowService creates a new cash-flow ledger over the given store.
func NewCashFlowService(store portsrepo.SnapshotStore) portssvc.CashFlowSvcFacade {
	return &cashFlowServiceImpl{store: store}
}

// Ensure cashFlowServiceImpl implements the CashFlowSvcFacade interface
var _ portssvc.CashFlowSvcFacade = (*cashFlowServiceImpl)(nil)

func (s *cashFlowServiceImpl) loadBanks(ctx context.Context) []domain.BankAccount {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyBankAccounts, []domain.BankAccount{})
}

func (s *cashFlowServiceImpl) loadTransactions(ctx context.Context) []domain.CashFlowTransaction {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyCashFlowTransactions, []domain.CashFlowTransaction{})
}

func (s *cashFlowServiceImpl) loadPayables(ctx context.Context) []domain.Payable {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyPayables, []domain.Payable{})
}

func (s *cashFlowServiceImpl) loadReceivables(ctx context.Context) []domain.Receivable {
	return storage.LoadCollection(ctx, s.store, portsrepo.KeyReceivables, []domain.Receivable{})
}

// defaultBanks is the fixed set of accounts seeded the first time the bank
// collection is read.
func defaultBanks(now time.Time) []domain.BankAccount {
	return []domain.BankAccount{
		{BankID: uuid.NewString(), Name: "Cash Counter", Balance: decimal.NewFromInt(150000), LastUpdated: now},
		{BankID: uuid.NewString(), Name: "Commercial Bank", Balance: decimal.NewFromInt(500000), LastUpdated: now},
		{BankID: uuid.NewString(), Name: "Mobile Wallet", Balance: decimal.NewFromInt(75000), LastUpdated: now},
	}
}

func (s *cashFlowServiceImpl) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	banks := s.loadBanks(ctx)
	if len(banks) > 0 {
		return banks, nil
	}

	banks = defaultBanks(time.Now().UTC())
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyBankAccounts, banks); err != nil {
		s.LogError(ctx, err, "Failed to seed default bank accounts")
		return nil, err
	}
	s.LogInfo(ctx, "Seeded default bank accounts", slog.Int("count", len(banks)))
	return banks, nil
}

func (s *cashFlowServiceImpl) ListTransactions(ctx context.Context) ([]domain.CashFlowTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadTransactions(ctx), nil
}

func (s *cashFlowServiceImpl) ListBankTransactions(ctx context.Context, bankID string) ([]domain.CashFlowTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.bankExists(ctx, bankID) {
		return nil, fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}

	entries := make([]domain.CashFlowTransaction, 0)
	for _, txn := range s.loadTransactions(ctx) {
		if txn.BankID == bankID {
			entries = append(entries, txn)
		}
	}
	return entries, nil
}

func (s *cashFlowServiceImpl) bankExists(ctx context.Context, bankID string) bool {
	for _, bank := range s.loadBanks(ctx) {
		if bank.BankID == bankID {
			return true
		}
	}
	return false
}

func (s *cashFlowServiceImpl) UpdateBankBalance(ctx context.Context, bankID string, amount decimal.Decimal, isDebit bool) (*domain.BankAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateBankBalanceLocked(ctx, bankID, amount, isDebit)
}

// updateBankBalanceLocked applies a debit or credit to a bank's absolute
// balance. Callers must hold s.mu. Balances are allowed to go negative;
// overdraft is not floored.
func (s *cashFlowServiceImpl) updateBankBalanceLocked(ctx context.Context, bankID string, amount decimal.Decimal, isDebit bool) (*domain.BankAccount, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	banks := s.loadBanks(ctx)
	idx := -1
	for i := range banks {
		if banks[i].BankID == bankID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("bank %s: %w", bankID, apperrors.ErrNotFound)
	}

	if isDebit {
		banks[idx].Balance = banks[idx].Balance.Sub(amount)
	} else {
		banks[idx].Balance = banks[idx].Balance.Add(amount)
	}
	banks[idx].LastUpdated = time.Now().UTC()

	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyBankAccounts, banks); err != nil {
		s.LogError(ctx, err, "Failed to save bank balance", slog.String("bank_id", bankID))
		return nil, err
	}

	updated := banks[idx]
	s.LogInfo(ctx, "Bank balance updated",
		slog.String("bank_id", bankID),
		slog.Bool("is_debit", isDebit),
		slog.String("balance", updated.Balance.String()))
	return &updated, nil
}

// RecordTransaction appends a ledger entry against a bank. The entry's
// running balance continues from the bank's latest entry in insertion
// order, falling back to the bank's balance before this update when the
// bank has no history yet.
func (s *cashFlowServiceImpl) RecordTransaction(ctx context.Context, req dto.RecordCashFlowRequest) (*domain.CashFlowTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Debit.IsNegative() || req.Credit.IsNegative() {
		return nil, fmt.Errorf("%w: debit and credit must not be negative", apperrors.ErrValidation)
	}
	if req.Debit.IsPositive() && req.Credit.IsPositive() {
		return nil, fmt.Errorf("%w: a transaction carries either a debit or a credit, not both", apperrors.ErrValidation)
	}

	isDebit := req.Debit.IsPositive()
	amount := req.Credit
	if isDebit {
		amount = req.Debit
	}

	// Capture the bank's balance before the update; it seeds the running
	// balance when this is the bank's first ledger entry.
	previousBalance := decimal.Zero
	found := false
	for _, bank := range s.loadBanks(ctx) {
		if bank.BankID == req.BankID {
			previousBalance = bank.Balance
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("bank %s: %w", req.BankID, apperrors.ErrNotFound)
	}

	bank, err := s.updateBankBalanceLocked(ctx, req.BankID, amount, isDebit)
	if err != nil {
		return nil, err
	}

	transactions := s.loadTransactions(ctx)
	runningBalance := previousBalance
	for _, txn := range transactions {
		if txn.BankID == req.BankID {
			runningBalance = txn.Balance
		}
	}
	if isDebit {
		runningBalance = runningBalance.Sub(amount)
	} else {
		runningBalance = runningBalance.Add(amount)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.CashFlowTransaction{
		TransactionID: uuid.NewString(),
		BankID:        req.BankID,
		Description:   req.Description,
		Category:      req.Category,
		Debit:         req.Debit,
		Credit:        req.Credit,
		Balance:       runningBalance,
		BankBalance:   bank.Balance,
		Date:          date,
		CreatedAt:     now,
	}
	transactions = append(transactions, txn)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyCashFlowTransactions, transactions); err != nil {
		s.LogError(ctx, err, "Failed to save cash-flow transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Cash-flow transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("bank_id", req.BankID),
		slog.String("balance", txn.Balance.String()))
	return &txn, nil
}

func (s *cashFlowServiceImpl) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPayables(ctx), nil
}

func (s *cashFlowServiceImpl) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payable := domain.Payable{
		PayableID: uuid.NewString(),
		Vendor:    req.Vendor,
		Amount:    req.Amount,
		Paid:      req.Paid,
		Pending:   req.Amount.Sub(req.Paid),
		DueDate:   req.DueDate,
		Notes:     req.Notes,
		Extra:     req.Extra,
		CreatedAt: time.Now().UTC(),
	}

	payables := append(s.loadPayables(ctx), payable)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyPayables, payables); err != nil {
		s.LogError(ctx, err, "Failed to save new payable", slog.String("payable_id", payable.PayableID))
		return nil, err
	}

	s.LogInfo(ctx, "Payable created successfully", slog.String("payable_id", payable.PayableID), slog.String("vendor", payable.Vendor))
	return &payable, nil
}

func (s *cashFlowServiceImpl) UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest) (*domain.Payable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payables := s.loadPayables(ctx)
	idx := -1
	for i := range payables {
		if payables[i].PayableID == payableID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("payable %s: %w", payableID, apperrors.ErrNotFound)
	}

	payable := &payables[idx]
	if req.Vendor != nil {
		payable.Vendor = *req.Vendor
	}
	if req.Paid != nil {
		payable.Paid = *req.Paid
	}
	if req.DueDate != nil {
		payable.DueDate = req.DueDate
	}
	if req.Notes != nil {
		payable.Notes = *req.Notes
	}
	for k, v := range req.Extra {
		if payable.Extra == nil {
			payable.Extra = make(map[string]string)
		}
		payable.Extra[k] = v
	}
	// Pending is only recomputed when the amount itself changes.
	if req.Amount != nil {
		payable.Amount = *req.Amount
		payable.Pending = payable.Amount.Sub(payable.Paid)
	}

	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyPayables, payables); err != nil {
		s.LogError(ctx, err, "Failed to save updated payable", slog.String("payable_id", payableID))
		return nil, err
	}

	s.LogInfo(ctx, "Payable updated successfully", slog.String("payable_id", payableID))
	updated := payables[idx]
	return &updated, nil
}

func (s *cashFlowServiceImpl) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadReceivables(ctx), nil
}

func (s *cashFlowServiceImpl) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := req.Status
	if status == "" {
		status = domain.ReceivableUnpaid
	}
	receivable := domain.Receivable{
		ReceivableID: uuid.NewString(),
		Customer:     req.Customer,
		Amount:       req.Amount,
		Status:       status,
		DueDate:      req.DueDate,
		Notes:        req.Notes,
		Extra:        req.Extra,
		CreatedAt:    time.Now().UTC(),
	}

	receivables := append(s.loadReceivables(ctx), receivable)
	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyReceivables, receivables); err != nil {
		s.LogError(ctx, err, "Failed to save new receivable", slog.String("receivable_id", receivable.ReceivableID))
		return nil, err
	}

	s.LogInfo(ctx, "Receivable created successfully", slog.String("receivable_id", receivable.ReceivableID), slog.String("customer", receivable.Customer))
	return &receivable, nil
}

func (s *cashFlowServiceImpl) UpdateReceivable(ctx context.Context, receivableID string, req dto.UpdateReceivableRequest) (*domain.Receivable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receivables := s.loadReceivables(ctx)
	idx := -1
	for i := range receivables {
		if receivables[i].ReceivableID == receivableID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("receivable %s: %w", receivableID, apperrors.ErrNotFound)
	}

	receivable := &receivables[idx]
	if req.Customer != nil {
		receivable.Customer = *req.Customer
	}
	if req.Amount != nil {
		receivable.Amount = *req.Amount
	}
	if req.Status != nil {
		receivable.Status = *req.Status
	}
	if req.DueDate != nil {
		receivable.DueDate = req.DueDate
	}
	if req.Notes != nil {
		receivable.Notes = *req.Notes
	}
	for k, v := range req.Extra {
		if receivable.Extra == nil {
			receivable.Extra = make(map[string]string)
		}
		receivable.Extra[k] = v
	}

	if err := storage.SaveCollection(ctx, s.store, portsrepo.KeyReceivables, receivables); err != nil {
		s.LogError(ctx, err, "Failed to save updated receivable", slog.String("receivable_id", receivableID))
		return nil, err
	}

	s.LogInfo(ctx, "Receivable updated successfully", slog.String("receivable_id", receivableID))
	updated := receivables[idx]
	return &updated, nil
}

// ComputeFinancialSummary aggregates the four persisted collections into a
// point-in-time view. It does not mutate anything and recomputing it with
// no intervening writes yields identical results.
func (s *cashFlowServiceImpl) ComputeFinancialSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalPayable := decimal.Zero
	for _, p := range s.loadPayables(ctx) {
		totalPayable = totalPayable.Add(p.Pending)
	}

	totalReceivable := decimal.Zero
	for _, r := range s.loadReceivables(ctx) {
		if r.Status == domain.ReceivableUnpaid {
			totalReceivable = totalReceivable.Add(r.Amount)
		}
	}

	totalBankBalance := decimal.Zero
	for _, b := range s.loadBanks(ctx) {
		totalBankBalance = totalBankBalance.Add(b.Balance)
	}

	cashBalance := totalBankBalance
	return &domain.FinancialSummary{
		TotalPayable:          totalPayable,
		TotalReceivable:       totalReceivable,
		TotalBankBalance:      totalBankBalance,
		CashBalance:           cashBalance,
		CashReceivableBalance: cashBalance.Add(totalReceivable).Sub(totalPayable),
		Difference:            totalReceivable.Sub(totalPayable),
	}, nil
}
