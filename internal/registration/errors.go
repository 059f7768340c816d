package registration

import (
	"sort"
	"strings"

	"tasjeel/pkg/serrors"
)

// ErrDuplicateRegistration is returned when the submitted national id already
// has a stored record, whether detected by the advisory pre-check or by the
// store's uniqueness constraint.
var ErrDuplicateRegistration = serrors.NewKind("DUPLICATE_REGISTRATION") //nolint: gochecknoglobals

// ValidationError aggregates per-field submission failures. All field checks
// run independently so the caller can present every problem at once.
type ValidationError struct {
	// Fields maps a submission field name to its failure message.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return "invalid submission: " + strings.Join(names, ", ")
}
