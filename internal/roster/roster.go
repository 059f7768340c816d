// Package roster implements the administrative operations over registered
// contestants: listing, in-place edits, deletion and CSV export. Filtering
// and export are pure functions over an already-fetched list; the admin
// session holds that list and refreshes it by listing again.
package roster

import (
	"context"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/serrors"
	"tasjeel/pkg/storage"
)

// registry is the concrete implementation of the Registry interface.
type registry struct {
	storage storage.Storage
}

// List returns all contestants, newest registration first.
func (r registry) List(ctx context.Context) ([]domain.Contestant, error) {
	rows, err := r.storage.Contestants(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list contestants")
	}

	return rows, nil
}

// Update applies the patch to the record keyed by nationalID. The national id
// itself is immutable and never part of the patch. Returns a not-found error
// when no record has that key, typically a stale admin list racing a delete.
func (r registry) Update(ctx context.Context,
	nationalID string,
	updates storage.ContestantUpdates) (*domain.Contestant, error) {
	updated, err := r.storage.UpdateContestant(ctx, nationalID, updates)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not update contestant")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no contestant with national id %s", nationalID)
	}

	return updated, nil
}

// Delete removes exactly one record by key and returns it. Returns a
// not-found error when no record has that key.
func (r registry) Delete(ctx context.Context, nationalID string) (*domain.Contestant, error) {
	deleted, err := r.storage.DeleteContestant(ctx, nationalID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not delete contestant")
	}
	if deleted == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no contestant with national id %s", nationalID)
	}

	return deleted, nil
}

// New creates a new Registry instance backed by the provided storage.
func New(storage storage.Storage) Registry {
	return registry{storage: storage}
}
