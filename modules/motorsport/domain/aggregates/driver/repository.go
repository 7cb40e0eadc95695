package driver

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (Driver, error)
	Create(ctx context.Context, d Driver) (Driver, error)
	Update(ctx context.Context, d Driver) (Driver, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
