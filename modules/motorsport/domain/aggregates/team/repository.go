package team

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id uuid.UUID) (Team, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) (Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
