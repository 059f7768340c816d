package roster

import (
	"context"

	"tasjeel/pkg/domain"
	"tasjeel/pkg/storage"
)

// Registry is the administrative view over the contestant records.
type Registry interface {
	List(ctx context.Context) ([]domain.Contestant, error)
	Update(ctx context.Context, nationalID string, updates storage.ContestantUpdates) (*domain.Contestant, error)
	Delete(ctx context.Context, nationalID string) (*domain.Contestant, error)
}
