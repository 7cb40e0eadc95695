package series

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Series, error)
	GetByID(ctx context.Context, id uuid.UUID) (Series, error)
	Create(ctx context.Context, s Series) (Series, error)
	Update(ctx context.Context, s Series) (Series, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
