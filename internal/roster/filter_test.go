package roster_test

import (
	"testing"

	"tasjeel/internal/roster"
	"tasjeel/pkg/domain"

	"github.com/stretchr/testify/require"
)

func filterFixture() []domain.Contestant {
	a := seedContestant("29512150123451", "أحمد محمد علي حسن")
	a.Center = domain.Centers[0]
	a.Level = domain.Levels[0]
	a.ExamCommittee = "لجنة أ"

	b := seedContestant("30001010199991", "محمود حسن إبراهيم سيد")
	b.Center = domain.Centers[1]
	b.Level = domain.Levels[1]
	b.ExamCommittee = "لجنة ب"

	c := seedContestant("30002290123451", "سارة أحمد محمود عبدالله")
	c.Center = domain.Centers[0]
	c.Level = domain.Levels[1]
	c.ExamCommittee = "لجنة أ"
	c.Gender = domain.GenderFemale

	return []domain.Contestant{a, b, c}
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	t.Parallel()

	records := filterFixture()
	got := roster.Filter(records, roster.Criteria{})
	require.Equal(t, records, got)
}

func TestFilter_Query(t *testing.T) {
	t.Parallel()

	records := filterFixture()

	// substring of a full name
	got := roster.Filter(records, roster.Criteria{Query: "سارة"})
	require.Len(t, got, 1)
	require.Equal(t, "30002290123451", got[0].NationalID)

	// substring of a national id
	got = roster.Filter(records, roster.Criteria{Query: "3000101"})
	require.Len(t, got, 1)
	require.Equal(t, "30001010199991", got[0].NationalID)

	// shared name fragment matches several records, input order kept
	got = roster.Filter(records, roster.Criteria{Query: "أحمد"})
	require.Len(t, got, 2)
	require.Equal(t, "29512150123451", got[0].NationalID)
	require.Equal(t, "30002290123451", got[1].NationalID)

	// no match
	got = roster.Filter(records, roster.Criteria{Query: "غير موجود"})
	require.Empty(t, got)
}

func TestFilter_Conjunction(t *testing.T) {
	t.Parallel()

	records := filterFixture()

	// center alone
	got := roster.Filter(records, roster.Criteria{Center: domain.Centers[0]})
	require.Len(t, got, 2)

	// center AND level narrows further
	got = roster.Filter(records, roster.Criteria{
		Center: domain.Centers[0],
		Level:  domain.Levels[1],
	})
	require.Len(t, got, 1)
	require.Equal(t, "30002290123451", got[0].NationalID)

	// all four conjuncts
	got = roster.Filter(records, roster.Criteria{
		Query:     "سارة",
		Center:    domain.Centers[0],
		Level:     domain.Levels[1],
		Committee: "لجنة أ",
	})
	require.Len(t, got, 1)

	// conflicting conjuncts match nothing
	got = roster.Filter(records, roster.Criteria{
		Center: domain.Centers[1],
		Level:  domain.Levels[0],
	})
	require.Empty(t, got)
}

func TestFilter_Committee(t *testing.T) {
	t.Parallel()

	records := filterFixture()
	got := roster.Filter(records, roster.Criteria{Committee: "لجنة ب"})
	require.Len(t, got, 1)
	require.Equal(t, "30001010199991", got[0].NationalID)
}
