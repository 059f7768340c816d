// Package memory provides an in-process implementation of the storage
// interfaces backed by maps. It is used by service-level tests and local
// demos where a PostgreSQL instance would be overkill. Transactions are
// serialized on a single mutex and support rollback via state snapshots.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/storage"
)

// Memory implements storage.Storage with map-backed state.
type Memory struct {
	mu sync.RWMutex
	// records keyed by national id
	records map[string]domain.Contestant
	// order keeps insertion order; listing reverses it for newest-first
	order []string

	// txMu serializes transactions so concurrent WithTx callers observe
	// committed state only
	txMu sync.Mutex

	// now is swappable in tests to control created_at stamps
	now func() time.Time
}

// New creates an empty in-memory storage.
func New() *Memory {
	return &Memory{
		records: make(map[string]domain.Contestant),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the clock used for created_at stamps. Intended for tests.
func (m *Memory) SetNow(now func() time.Time) {
	m.now = now
}

// Close is a no-op for the in-memory storage.
func (m *Memory) Close() error {
	return nil
}

// StoreContestant inserts a new record, stamping created_at, and returns the
// stored copy. Returns storage.ErrNationalIDTaken when the key is occupied,
// mirroring the database uniqueness constraint.
func (m *Memory) StoreContestant(_ context.Context, contestant domain.Contestant) (*domain.Contestant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[contestant.NationalID]; ok {
		return nil, fmt.Errorf("could not store contestant: %w", storage.ErrNationalIDTaken)
	}

	contestant.CreatedAt = m.now()
	m.records[contestant.NationalID] = contestant
	m.order = append(m.order, contestant.NationalID)

	return &contestant, nil
}

// ContestantByNationalID returns a copy of the record, or nil when absent.
func (m *Memory) ContestantByNationalID(_ context.Context, nationalID string) (*domain.Contestant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[nationalID]
	if !ok {
		return nil, nil //nolint: nilnil
	}

	return &record, nil
}

// Contestants returns all records newest first.
func (m *Memory) Contestants(_ context.Context) ([]domain.Contestant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Contestant, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.records[m.order[i]])
	}

	return out, nil
}

// UpdateContestant applies the non-nil fields of updates to the record keyed
// by nationalID. Returns nil when no such record exists.
func (m *Memory) UpdateContestant(_ context.Context,
	nationalID string,
	updates storage.ContestantUpdates) (*domain.Contestant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[nationalID]
	if !ok {
		return nil, nil //nolint: nilnil
	}

	if updates.FullName != nil {
		record.FullName = *updates.FullName
	}
	if updates.PhoneNumber != nil {
		record.PhoneNumber = *updates.PhoneNumber
	}
	if updates.Level != nil {
		record.Level = *updates.Level
	}
	if updates.Center != nil {
		record.Center = *updates.Center
	}
	if updates.ExamCommittee != nil {
		record.ExamCommittee = *updates.ExamCommittee
	}
	if updates.Address != nil {
		record.Address = *updates.Address
	}
	if updates.GoldenPsalms != nil {
		record.GoldenPsalms = *updates.GoldenPsalms
	}

	m.records[nationalID] = record

	return &record, nil
}

// DeleteContestant removes the record keyed by nationalID and returns the
// deleted copy, or nil when no such record exists.
func (m *Memory) DeleteContestant(_ context.Context, nationalID string) (*domain.Contestant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[nationalID]
	if !ok {
		return nil, nil //nolint: nilnil
	}

	delete(m.records, nationalID)
	for i, id := range m.order {
		if id == nationalID {
			m.order = append(m.order[:i], m.order[i+1:]...)

			break
		}
	}

	return &record, nil
}
