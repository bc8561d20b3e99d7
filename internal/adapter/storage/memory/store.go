// Package memory is a process-local storage backend used by the memory
// storage driver and by end-to-end tests. One write transaction runs at a
// time; a rollback replays the transaction's undo journal.
package memory

import (
	"context"
	"errors"
	"sync"

	"paysecure-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errForeignTx = errors.New("memory: transaction was not started by this store")

// Store holds every table of the memory backend.
type Store struct {
	sem chan struct{} // held by the open write transaction

	mu           sync.RWMutex
	users        map[uuid.UUID]domain.User
	accounts     map[uuid.UUID]domain.Account
	transactions map[uuid.UUID]domain.Transaction
	txOrder      []uuid.UUID
	audit        []domain.AuditEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sem:          make(chan struct{}, 1),
		users:        make(map[uuid.UUID]domain.User),
		accounts:     make(map[uuid.UUID]domain.Account),
		transactions: make(map[uuid.UUID]domain.Transaction),
	}
}

// Begin implements ports.DBTransactor. It blocks until the previous write
// transaction finishes or ctx is done.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	select {
	case s.sem <- struct{}{}:
		return &Tx{store: s}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Tx is a memory write transaction. Only Commit and Rollback are supported;
// the embedded pgx.Tx is nil.
type Tx struct {
	pgx.Tx
	store  *Store
	undo   []func()
	closed bool
}

// Commit keeps the writes and releases the store.
func (t *Tx) Commit(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

// Rollback undoes the writes in reverse order and releases the store.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *Tx) finish() {
	t.closed = true
	t.undo = nil
	<-t.store.sem
}

// onRollback records fn to run if the transaction is rolled back. Callers
// hold s.mu.
func (t *Tx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (s *Store) tx(tx pgx.Tx) (*Tx, error) {
	mt, ok := tx.(*Tx)
	if !ok || mt.store != s {
		return nil, errForeignTx
	}
	if mt.closed {
		return nil, pgx.ErrTxClosed
	}
	return mt, nil
}
