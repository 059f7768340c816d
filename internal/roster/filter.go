package roster

import (
	"strings"

	"tasjeel/pkg/domain"
)

// Criteria narrow a contestant list. All set criteria must match; an empty
// criterion is a wildcard.
type Criteria struct {
	// Query matches case-insensitively against the full name, or as a
	// substring of the national id.
	Query string
	// Center matches the contest center exactly.
	Center string
	// Level matches the memorization level exactly.
	Level string
	// Committee matches the exam committee exactly.
	Committee string
}

// Filter returns the records matching all set criteria, preserving input
// order. With empty criteria the input comes back unchanged.
func Filter(records []domain.Contestant, criteria Criteria) []domain.Contestant {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	out := make([]domain.Contestant, 0, len(records))
	for _, record := range records {
		if query != "" &&
			!strings.Contains(strings.ToLower(record.FullName), query) &&
			!strings.Contains(record.NationalID, query) {
			continue
		}
		if criteria.Center != "" && record.Center != criteria.Center {
			continue
		}
		if criteria.Level != "" && record.Level != criteria.Level {
			continue
		}
		if criteria.Committee != "" && record.ExamCommittee != criteria.Committee {
			continue
		}

		out = append(out, record)
	}

	return out
}
