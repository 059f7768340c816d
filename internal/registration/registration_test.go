package registration_test

import (
	"context"
	"testing"

	"tasjeel/internal/registration"
	"tasjeel/pkg/domain"
	"tasjeel/pkg/serrors"
	"tasjeel/pkg/storage/memory"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func validSubmission() registration.Submission {
	return registration.Submission{
		FullName:    "أحمد محمد علي حسن",
		NationalID:  "29512150123451",
		PhoneNumber: "01012345678",
		Level:       domain.Levels[0],
		Center:      domain.Centers[0],
		Address:     "شارع الجمهورية، المنيا",
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{})
	ctx := context.Background()

	sub := validSubmission()
	stored, err := reg.Register(ctx, sub)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, sub.NationalID, stored.NationalID)
	// derived attributes come from the national id, not the form
	require.Equal(t, "القاهرة", stored.Governorate)
	require.Equal(t, domain.GenderMale, stored.Gender)
	require.Equal(t, 1995, stored.BirthDate.Year())
	require.False(t, stored.CreatedAt.IsZero())
}

func TestRegister_FieldValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(s *registration.Submission)
		field  string
	}{
		{
			name:   "invalid national id",
			mutate: func(s *registration.Submission) { s.NationalID = "123" },
			field:  "nationalId",
		},
		{
			name:   "name with three parts",
			mutate: func(s *registration.Submission) { s.FullName = "أحمد محمد علي" },
			field:  "fullName",
		},
		{
			name:   "name with five parts",
			mutate: func(s *registration.Submission) { s.FullName = "أحمد محمد علي حسن إبراهيم" },
			field:  "fullName",
		},
		{
			name:   "short phone",
			mutate: func(s *registration.Submission) { s.PhoneNumber = "0101234567" },
			field:  "phoneNumber",
		},
		{
			name:   "phone with letters",
			mutate: func(s *registration.Submission) { s.PhoneNumber = "01012345a78" },
			field:  "phoneNumber",
		},
		{
			name:   "unknown center",
			mutate: func(s *registration.Submission) { s.Center = "مركز غير معروف" },
			field:  "center",
		},
		{
			name:   "missing level",
			mutate: func(s *registration.Submission) { s.Level = "" },
			field:  "level",
		},
		{
			name:   "short address",
			mutate: func(s *registration.Submission) { s.Address = "هنا" },
			field:  "address",
		},
		{
			name:   "golden psalms while track closed",
			mutate: func(s *registration.Submission) { s.GoldenPsalms = true },
			field:  "goldenPsalms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := memory.New()
			reg := registration.New(store, registration.Options{})
			ctx := context.Background()

			sub := validSubmission()
			tt.mutate(&sub)

			_, err := reg.Register(ctx, sub)
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrBadRequest)

			var valErr *registration.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Contains(t, valErr.Fields, tt.field)

			// validation failures never reach the store
			rows, err := store.Contestants(ctx)
			require.NoError(t, err)
			require.Empty(t, rows)
		})
	}
}

func TestRegister_CollectsAllFieldFailures(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{})

	sub := validSubmission()
	sub.PhoneNumber = "123"
	sub.Address = "قصير"

	_, err := reg.Register(context.Background(), sub)
	require.Error(t, err)

	var valErr *registration.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Fields, 2)
	require.Contains(t, valErr.Fields, "phoneNumber")
	require.Contains(t, valErr.Fields, "address")
}

func TestRegister_GoldenPsalmsTrack(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{GoldenPsalmsTrack: true})
	ctx := context.Background()

	// level becomes optional when the golden psalms track is marked
	sub := validSubmission()
	sub.GoldenPsalms = true
	sub.Level = ""

	stored, err := reg.Register(ctx, sub)
	require.NoError(t, err)
	require.True(t, stored.GoldenPsalms)
	require.Empty(t, stored.Level)

	// a level given alongside the flag still has to be a known one
	sub2 := validSubmission()
	sub2.NationalID = "30001010199991"
	sub2.GoldenPsalms = true
	sub2.Level = "مستوى وهمي"

	_, err = reg.Register(ctx, sub2)
	require.Error(t, err)

	var valErr *registration.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Fields, "level")
}

func TestRegister_RequireCommittee(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{RequireCommittee: true})
	ctx := context.Background()

	sub := validSubmission()
	_, err := reg.Register(ctx, sub)
	require.Error(t, err)

	var valErr *registration.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Contains(t, valErr.Fields, "examCommittee")

	sub.ExamCommittee = "لجنة مركز المنيا"
	stored, err := reg.Register(ctx, sub)
	require.NoError(t, err)
	require.Equal(t, "لجنة مركز المنيا", stored.ExamCommittee)
}

func TestRegister_DuplicateSequential(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{})
	ctx := context.Background()

	sub := validSubmission()
	sub.NationalID = "30001010199991"

	_, err := reg.Register(ctx, sub)
	require.NoError(t, err)

	// resubmitting with every other field changed still hits the duplicate
	sub.FullName = "محمود حسن إبراهيم سيد"
	sub.PhoneNumber = "01198765432"
	sub.Center = domain.Centers[1]
	sub.Address = "عنوان آخر تماما"

	_, err = reg.Register(ctx, sub)
	require.Error(t, err)
	require.ErrorIs(t, err, registration.ErrDuplicateRegistration)

	// the store still contains exactly one row for that key
	rows, err := store.Contestants(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRegister_DuplicateConcurrent(t *testing.T) {
	t.Parallel()

	store := memory.New()
	reg := registration.New(store, registration.Options{})
	ctx := context.Background()
	const attempts = 8

	var g errgroup.Group
	results := make([]error, attempts)
	for i := range attempts {
		g.Go(func() error {
			sub := validSubmission()
			_, err := reg.Register(ctx, sub)
			results[i] = err

			return nil
		})
	}
	require.NoError(t, g.Wait())

	var wins int
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, registration.ErrDuplicateRegistration)
		}
	}
	require.Equal(t, 1, wins)

	rows, err := store.Contestants(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
