package postgres

import (
	"context"
	"errors"
	"fmt"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	contestantsTable = "contestants"
)

// StoreContestant inserts a new contestant row. Unique-constraint violations
// on the national id primary key are translated to storage.ErrNationalIDTaken
// so the caller can tell a duplicate apart from an infrastructure failure.
func (p *PgSQL) StoreContestant(ctx context.Context, contestant domain.Contestant) (*domain.Contestant, error) {
	var row PgContestant
	row.FromDomain(contestant)

	var stored PgContestant
	found, err := p.Builder.Insert(contestantsTable).
		Rows(row).
		Returning(&PgContestant{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store contestant into pg: %w", storage.ErrNationalIDTaken)
		}

		return nil, fmt.Errorf("could not store contestant into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store contestant into pg: no row returned")
	}

	return stored.ToDomain(), nil
}

// ContestantByNationalID returns the contestant with the given national id,
// or nil when no such row exists.
func (p *PgSQL) ContestantByNationalID(ctx context.Context, nationalID string) (*domain.Contestant, error) {
	var row PgContestant
	found, err := p.Builder.From(contestantsTable).
		Where(goqu.I("national_id").Eq(nationalID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contestant by national id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Contestants returns all contestants ordered by registration time, newest
// first. National id descending breaks ties so the order is deterministic.
func (p *PgSQL) Contestants(ctx context.Context) ([]domain.Contestant, error) {
	var rows []PgContestant
	if err := p.Builder.From(contestantsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("national_id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch contestants from pg: %w", err)
	}

	return pgContestantsToDomain(rows), nil
}

// UpdateContestant applies the non-nil fields of updates to the row keyed by
// nationalID, returning the updated record or nil when no such row exists.
func (p *PgSQL) UpdateContestant(ctx context.Context,
	nationalID string,
	updates storage.ContestantUpdates) (*domain.Contestant, error) {
	rec := goqu.Record{}
	if updates.FullName != nil {
		rec["full_name"] = *updates.FullName
	}
	if updates.PhoneNumber != nil {
		rec["phone_number"] = *updates.PhoneNumber
	}
	if updates.Level != nil {
		rec["level"] = *updates.Level
	}
	if updates.Center != nil {
		rec["center"] = *updates.Center
	}
	if updates.ExamCommittee != nil {
		rec["exam_committee"] = *updates.ExamCommittee
	}
	if updates.Address != nil {
		rec["address"] = *updates.Address
	}
	if updates.GoldenPsalms != nil {
		rec["golden_psalms"] = *updates.GoldenPsalms
	}
	if len(rec) == 0 {
		// nothing to change, return the current row
		return p.ContestantByNationalID(ctx, nationalID)
	}

	var row PgContestant
	found, err := p.Builder.Update(contestantsTable).
		Set(rec).
		Where(goqu.I("national_id").Eq(nationalID)).
		Returning(&PgContestant{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update contestant in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteContestant removes the row keyed by nationalID, returning the deleted
// record or nil when no such row exists.
func (p *PgSQL) DeleteContestant(ctx context.Context, nationalID string) (*domain.Contestant, error) {
	var row PgContestant
	found, err := p.Builder.Delete(contestantsTable).
		Where(goqu.I("national_id").Eq(nationalID)).
		Returning(&PgContestant{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete contestant in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
