package drivergroup

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetAll(ctx context.Context) ([]DriverGroup, error)
	GetByID(ctx context.Context, id uuid.UUID) (DriverGroup, error)
	Create(ctx context.Context, g DriverGroup) (DriverGroup, error)
	Update(ctx context.Context, g DriverGroup) (DriverGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
