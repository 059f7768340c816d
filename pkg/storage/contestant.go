package storage

import (
	"context"

	"tasjeel/pkg/domain"
)

// ContestantUpdates describes the mutable fields of a contestant record. Only
// non-nil fields are applied; the national ID is the immutable key and is
// never part of an update.
type ContestantUpdates struct {
	// FullName replaces the stored full name.
	FullName *string
	// PhoneNumber replaces the stored phone number.
	PhoneNumber *string
	// Level replaces the memorization level. An empty string clears it
	// (golden-psalms-only contestants).
	Level *string
	// Center replaces the contest center.
	Center *string
	// ExamCommittee replaces the committee assignment.
	ExamCommittee *string
	// Address replaces the stored address.
	Address *string
	// GoldenPsalms replaces the golden-psalms track flag.
	GoldenPsalms *bool
}

// ContestantStorage defines the persistence operations for contestant
// records. The national ID column carries a schema-level uniqueness
// constraint; StoreContestant surfaces violations as ErrNationalIDTaken so
// callers can distinguish duplicates from other store failures.
type ContestantStorage interface {
	// StoreContestant inserts a new record and returns the stored row as it
	// exists in the database (including the server-assigned creation time).
	// Returns an error wrapping ErrNationalIDTaken when a record with the
	// same national ID already exists.
	StoreContestant(ctx context.Context, contestant domain.Contestant) (*domain.Contestant, error)
	// ContestantByNationalID fetches a record by its key. Returns nil when
	// not found.
	ContestantByNationalID(ctx context.Context, nationalID string) (*domain.Contestant, error)
	// Contestants returns all records ordered by creation time, newest first.
	Contestants(ctx context.Context) ([]domain.Contestant, error)
	// UpdateContestant applies the non-nil fields of updates to the record
	// keyed by nationalID and returns the updated row, or nil when no such
	// record exists.
	UpdateContestant(ctx context.Context, nationalID string, updates ContestantUpdates) (*domain.Contestant, error)
	// DeleteContestant removes the record keyed by nationalID and returns the
	// deleted row, or nil when no such record exists.
	DeleteContestant(ctx context.Context, nationalID string) (*domain.Contestant, error)
}
