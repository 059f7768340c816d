package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a
	// non-transactional context is attempted while already inside a
	// transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is
	// attempted while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrNationalIDTaken is returned by StoreContestant when the uniqueness
	// constraint on the national ID column rejects the insert. It is the
	// store-level signal the registration service remaps to its
	// duplicate-registration error.
	ErrNationalIDTaken = errors.New("national id already registered")
)
