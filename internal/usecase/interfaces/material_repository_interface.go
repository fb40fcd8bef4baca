package interfaces

import (
	"context"
	"house_calculator/internal/domain/entities"
)

//go:generate mockgen -source=material_repository_interface.go -destination=mocks/mock_material_repository.go -package=mock_interfaces

// IMaterialRepository abstracts persistence for the material price catalog.
//
// List with a nil house type returns the whole catalog; otherwise only the
// materials tagged with that house type.

type IMaterialRepository interface {
	Create(ctx context.Context, m entities.Material) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error)
	Count(ctx context.Context) (int, error)
}
