package interfaces

import (
	"context"
	"house_calculator/internal/domain/entities"
)

//go:generate mockgen -source=calculation_repository_interface.go -destination=mocks/mock_calculation_repository.go -package=mock_interfaces

// ICalculationRepository abstracts persistence for Calculation.
//
// Lookups return a zero Calculation (empty ID) and a nil error when nothing
// matches; the use case turns that into ErrCalculationNotFound.

type ICalculationRepository interface {
	Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error)
	GetByID(ctx context.Context, id string) (entities.Calculation, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Calculation, error)
}
