package postgres_test

import (
	"context"
	"testing"
	"time"

	"tasjeel/pkg/storage"

	"github.com/stretchr/testify/require"
)

func mustDate(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestPgSQL_StoreContestant(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store and return server-assigned created_at", func(t *testing.T) {
		c := testContestant("29101010100014")

		stored, err := pgSQL.StoreContestant(ctx, c)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.Equal(t, c.NationalID, stored.NationalID)
		require.Equal(t, c.FullName, stored.FullName)
		require.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("duplicate national id maps to ErrNationalIDTaken", func(t *testing.T) {
		c := testContestant("29101010100025")

		_, err := pgSQL.StoreContestant(ctx, c)
		require.NoError(t, err)

		// same key, different payload; the constraint fires regardless
		c.FullName = "محمود حسن"
		_, err = pgSQL.StoreContestant(ctx, c)
		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrNationalIDTaken)
	})
}

func TestPgSQL_ContestantByNationalID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := testContestant("29202020100036")
	_, err := pgSQL.StoreContestant(ctx, c)
	require.NoError(t, err)

	got, err := pgSQL.ContestantByNationalID(ctx, c.NationalID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, c.PhoneNumber, got.PhoneNumber)
	require.Equal(t, c.BirthDate.Format(time.DateOnly), got.BirthDate.Format(time.DateOnly))

	// unknown key returns nil without error
	missing, err := pgSQL.ContestantByNationalID(ctx, "39901010100017")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Contestants_OrderedNewestFirst(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ids := []string{"29303030100018", "29303030100029", "29303030100030"}
	for _, id := range ids {
		_, err := pgSQL.StoreContestant(ctx, testContestant(id))
		require.NoError(t, err)
	}

	// spread created_at so ordering is deterministic: last insert newest
	now := time.Now().UTC()
	for i, id := range ids {
		created := now.Add(-time.Duration(len(ids)-1-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx,
			"UPDATE contestants SET created_at = $1 WHERE national_id = $2", created, id)
		require.NoError(t, err)
	}

	rows, err := pgSQL.Contestants(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(ids))
	require.Equal(t, ids[2], rows[0].NationalID)
	require.Equal(t, ids[1], rows[1].NationalID)
	require.Equal(t, ids[0], rows[2].NationalID)
	require.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
}

func TestPgSQL_UpdateContestant(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := testContestant("29404040100041")
	_, err := pgSQL.StoreContestant(ctx, c)
	require.NoError(t, err)

	t.Run("applies only non-nil fields", func(t *testing.T) {
		phone := "01198765432"
		committee := "لجنة مركز المنيا"
		updated, err := pgSQL.UpdateContestant(ctx, c.NationalID, storage.ContestantUpdates{
			PhoneNumber:   &phone,
			ExamCommittee: &committee,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, phone, updated.PhoneNumber)
		require.Equal(t, committee, updated.ExamCommittee)
		// untouched fields keep their values
		require.Equal(t, c.FullName, updated.FullName)
		require.Equal(t, c.Level, updated.Level)
	})

	t.Run("empty updates returns current row", func(t *testing.T) {
		got, err := pgSQL.UpdateContestant(ctx, c.NationalID, storage.ContestantUpdates{})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, c.NationalID, got.NationalID)
	})

	t.Run("unknown key returns nil", func(t *testing.T) {
		name := "غير موجود"
		got, err := pgSQL.UpdateContestant(ctx, "39905050100052", storage.ContestantUpdates{
			FullName: &name,
		})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_DeleteContestant(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := testContestant("29505050100063")
	_, err := pgSQL.StoreContestant(ctx, c)
	require.NoError(t, err)

	// delete returns the removed record
	deleted, err := pgSQL.DeleteContestant(ctx, c.NationalID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, c.NationalID, deleted.NationalID)

	// fetching it afterwards returns nil
	got, err := pgSQL.ContestantByNationalID(ctx, c.NationalID)
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again reports not found via nil, not an error
	deleted2, err := pgSQL.DeleteContestant(ctx, c.NationalID)
	require.NoError(t, err)
	require.Nil(t, deleted2)

	// the key is reusable after deletion
	_, err = pgSQL.StoreContestant(ctx, c)
	require.NoError(t, err)
}
