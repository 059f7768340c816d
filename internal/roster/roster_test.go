package roster_test

import (
	"context"
	"testing"
	"time"

	"tasjeel/internal/roster"
	"tasjeel/pkg/domain"
	"tasjeel/pkg/serrors"
	"tasjeel/pkg/storage"
	"tasjeel/pkg/storage/memory"

	"github.com/stretchr/testify/require"
)

func seedContestant(nationalID, fullName string) domain.Contestant {
	return domain.Contestant{
		NationalID:   nationalID,
		FullName:     fullName,
		PhoneNumber:  "01012345678",
		Address:      "شارع الجمهورية، المنيا",
		Level:        domain.Levels[0],
		Center:       domain.Centers[0],
		GoldenPsalms: false,
		Governorate:  "القاهرة",
		BirthDate:    time.Date(1995, time.December, 15, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderMale,
	}
}

func seededStore(t *testing.T, contestants ...domain.Contestant) *memory.Memory {
	t.Helper()

	store := memory.New()
	ts := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	store.SetNow(func() time.Time {
		ts = ts.Add(time.Second)

		return ts
	})
	for _, c := range contestants {
		_, err := store.StoreContestant(context.Background(), c)
		require.NoError(t, err)
	}

	return store
}

func TestRegistry_List_NewestFirst(t *testing.T) {
	t.Parallel()

	store := seededStore(t,
		seedContestant("29512150123451", "أحمد محمد علي حسن"),
		seedContestant("30001010199991", "محمود حسن إبراهيم سيد"),
	)
	reg := roster.New(store)

	rows, err := reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "30001010199991", rows[0].NationalID)
	require.Equal(t, "29512150123451", rows[1].NationalID)
}

func TestRegistry_Update(t *testing.T) {
	t.Parallel()

	store := seededStore(t, seedContestant("29512150123451", "أحمد محمد علي حسن"))
	reg := roster.New(store)
	ctx := context.Background()

	phone := "01198765432"
	updated, err := reg.Update(ctx, "29512150123451", storage.ContestantUpdates{PhoneNumber: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.PhoneNumber)
	// the key never changes
	require.Equal(t, "29512150123451", updated.NationalID)

	// unknown key reports not found
	_, err = reg.Update(ctx, "39901010100017", storage.ContestantUpdates{PhoneNumber: &phone})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRegistry_Delete(t *testing.T) {
	t.Parallel()

	store := seededStore(t, seedContestant("29512150123451", "أحمد محمد علي حسن"))
	reg := roster.New(store)
	ctx := context.Background()

	deleted, err := reg.Delete(ctx, "29512150123451")
	require.NoError(t, err)
	require.Equal(t, "29512150123451", deleted.NationalID)

	// a second delete hits the stale-list race and reports not found
	_, err = reg.Delete(ctx, "29512150123451")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	rows, err := reg.List(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}
