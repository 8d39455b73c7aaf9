package repositories

import "context"

// Collection keys used by the ledger services. Every persisted collection
// lives under exactly one of these keys as a serialized snapshot.
const (
	KeyInventoryItems         = "inventory_items"
	KeySuppliers              = "suppliers"
	KeyCollectionTransactions = "collection_transactions"
	KeySaleTransactions       = "sale_transactions"
	KeyReceipts               = "receipts"
	KeyBankAccounts           = "bank_accounts"
	KeyCashFlowTransactions   = "cashflow_transactions"
	KeyPayables               = "payables"
	KeyReceivables            = "receivables"
)

// SnapshotStore is the persistence medium behind the ledgers: a named
// snapshot per collection key, loaded whole and overwritten whole.
// Implementations are free to back this with memory, files or a database;
// the ledger services only ever speak in terms of Load and Save.
type SnapshotStore interface {
	// Load returns the raw snapshot stored under key, or apperrors.ErrNotFound
	// when no snapshot exists yet.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the snapshot stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
