// Package registration implements the public intake path: field validation
// of a contestant submission followed by a check-then-insert commit against
// the record store.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasjeel/internal/config"
	"tasjeel/internal/nationalid"
	"tasjeel/pkg/domain"
	"tasjeel/pkg/serrors"
	"tasjeel/pkg/storage"
)

const (
	phoneLength      = 11
	nameComponents   = 4
	minAddressLength = 5
)

// Submission carries the fields of a public registration form.
type Submission struct {
	FullName      string
	NationalID    string
	PhoneNumber   string
	Level         string
	Center        string
	ExamCommittee string
	Address       string
	GoldenPsalms  bool
}

// Options configure the registration policy for the current contest edition.
// These settings are typically derived from application configuration.
type Options struct {
	// RequireCommittee makes the exam committee selection mandatory.
	RequireCommittee bool
	// GoldenPsalmsTrack opens the level-independent golden psalms track. When
	// closed, submissions marking it are rejected.
	GoldenPsalmsTrack bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RequireCommittee:  cfg.Contest.RequireCommittee,
		GoldenPsalmsTrack: cfg.Contest.GoldenPsalmsTrack,
	}
}

// registrar is the concrete implementation of the Registrar interface. It
// coordinates submission validation with the storage layer.
type registrar struct {
	options Options
	storage storage.Storage
	now     func() time.Time
}

// Register validates the submission and commits it exactly once.
//
// The duplicate pre-check and the insert run inside one transaction. The
// pre-check narrows the race window between concurrent submissions but the
// store's uniqueness constraint is the source of truth: a constraint
// violation at insert time is reported as the same duplicate error as a
// pre-check hit, never as a generic store failure.
func (r registrar) Register(ctx context.Context, submission Submission) (*domain.Contestant, error) {
	details, err := r.validate(submission)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid submission")
	}

	contestant := domain.Contestant{
		NationalID:    submission.NationalID,
		FullName:      strings.TrimSpace(submission.FullName),
		PhoneNumber:   submission.PhoneNumber,
		Address:       strings.TrimSpace(submission.Address),
		Level:         submission.Level,
		Center:        submission.Center,
		ExamCommittee: strings.TrimSpace(submission.ExamCommittee),
		GoldenPsalms:  submission.GoldenPsalms,
		Governorate:   details.Governorate,
		BirthDate:     details.BirthDate,
		Gender:        details.Gender,
	}

	var stored *domain.Contestant
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.ContestantByNationalID(ctx, contestant.NationalID)
		if err != nil {
			return fmt.Errorf("could not check for existing registration: %w", err)
		}
		if existing != nil {
			return serrors.With(ErrDuplicateRegistration, "national id %s is already registered", contestant.NationalID)
		}

		res, err := tx.StoreContestant(ctx, contestant)
		if err != nil {
			return fmt.Errorf("could not store registration: %w", err)
		}
		stored = res

		return nil
	}); err != nil {
		// a constraint violation means a concurrent submission won the race;
		// report it exactly like a pre-check hit
		if errors.Is(err, storage.ErrNationalIDTaken) {
			return nil, serrors.With(ErrDuplicateRegistration,
				"national id %s is already registered", contestant.NationalID)
		}
		if errors.Is(err, ErrDuplicateRegistration) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not complete registration")
	}

	return stored, nil
}

// validate runs every field check and collects all failures, so the caller
// can surface them together. Returns the attributes derived from the national
// id on success.
func (r registrar) validate(submission Submission) (*nationalid.Details, error) {
	fields := make(map[string]string)

	details, err := nationalid.Validate(submission.NationalID, r.now())
	if err != nil {
		fields["nationalId"] = err.Error()
	}

	if len(strings.Fields(submission.FullName)) != nameComponents {
		fields["fullName"] = "full name must consist of exactly 4 parts"
	}

	if len(submission.PhoneNumber) != phoneLength || !allDigits(submission.PhoneNumber) {
		fields["phoneNumber"] = "phone number must be exactly 11 digits"
	}

	if !domain.ValidCenter(submission.Center) {
		fields["center"] = "unknown contest center"
	}

	switch {
	case submission.GoldenPsalms && !r.options.GoldenPsalmsTrack:
		fields["goldenPsalms"] = "the golden psalms track is not open this edition"
	case submission.GoldenPsalms:
		// level is optional on the golden psalms track, but when given it
		// still has to be a known one
		if submission.Level != "" && !domain.ValidLevel(submission.Level) {
			fields["level"] = "unknown memorization level"
		}
	default:
		if !domain.ValidLevel(submission.Level) {
			fields["level"] = "a memorization level is required"
		}
	}

	if r.options.RequireCommittee && strings.TrimSpace(submission.ExamCommittee) == "" {
		fields["examCommittee"] = "an exam committee selection is required"
	}

	if len([]rune(strings.TrimSpace(submission.Address))) < minAddressLength {
		fields["address"] = "address must be at least 5 characters"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return details, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// New creates a new Registrar instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Registrar {
	return &registrar{
		options: options,
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}
