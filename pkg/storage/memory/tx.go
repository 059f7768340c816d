package memory

import (
	"context"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/storage"
)

// memTx is a transactional view over a Memory store. It holds the store's
// transaction mutex and a snapshot of the state at Begin time so Rollback can
// restore it. A memTx becomes unusable after Commit or Rollback.
type memTx struct {
	*Memory

	savedRecords map[string]domain.Contestant
	savedOrder   []string
	done         bool
}

// Begin acquires the transaction mutex and snapshots the current state.
// Transactions are fully serialized, so concurrent callers block here until
// the previous transaction commits or rolls back.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	m.txMu.Lock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	saved := make(map[string]domain.Contestant, len(m.records))
	for id, record := range m.records {
		saved[id] = record
	}

	return &memTx{
		Memory:       m,
		savedRecords: saved,
		savedOrder:   append([]string(nil), m.order...),
	}, nil
}

// WithTx begins a transaction, runs the callback against it, and commits on
// success or rolls back on error.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// Begin on a transactional handle always fails; nested transactions are not
// supported.
func (t *memTx) Begin(_ context.Context) (storage.TxStorage, error) {
	return nil, storage.ErrAlreadyInTx
}

// WithTx on a transactional handle always fails; nested transactions are not
// supported.
func (t *memTx) WithTx(_ context.Context, _ func(storage storage.AllStorage) error) error {
	return storage.ErrAlreadyInTx
}

// Commit releases the transaction mutex, keeping all changes.
func (t *memTx) Commit() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true
	t.txMu.Unlock()

	return nil
}

// Rollback restores the snapshot taken at Begin and releases the mutex.
func (t *memTx) Rollback() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true

	t.mu.Lock()
	t.Memory.records = t.savedRecords
	t.Memory.order = t.savedOrder
	t.mu.Unlock()

	t.txMu.Unlock()

	return nil
}
