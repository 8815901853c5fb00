// Package memory holds mutex-guarded repositories used when no database is
// configured. State is lost on restart.
package memory

import (
	"context"
	"sync"

	"elevatehub/internal/domain/repositories"
)

// Store is shared by the in-memory repositories so a transaction can
// serialise work across them
type Store struct {
	mu       sync.RWMutex
	txMu     sync.Mutex
	sessions map[string]*sessionRecord
	settings map[string]*settingsRecord
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionRecord),
		settings: make(map[string]*settingsRecord),
	}
}

type txKey struct{}

// TransactionManager serialises ExecTx calls. There is no rollback: a
// failing function keeps the writes it already made.
type TransactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager over store
func NewTransactionManager(store *Store) repositories.TransactionManager {
	return &TransactionManager{store: store}
}

// ExecTx runs fn while holding the store's transaction lock. Nested calls
// reuse the outer lock.
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}
