package registration

import (
	"context"

	"tasjeel/pkg/domain"
)

// Registrar accepts public contestant submissions.
type Registrar interface {
	Register(ctx context.Context, submission Submission) (*domain.Contestant, error)
}
