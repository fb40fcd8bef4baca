// Package estimator computes material quantities for a house from its
// foundation, wall and roof geometry.
//
// Every function in this package is pure: no I/O, no shared state. Results
// for the same input are identical across calls and goroutines.
package estimator

import (
	"fmt"

	"house_calculator/internal/domain/entities"
)

// ErrUnsupportedArchetype is returned when the house type has no strategy.
// It wraps entities.ErrUnsupportedHouseType so callers can match either.
var ErrUnsupportedArchetype = fmt.Errorf("estimator: %w", entities.ErrUnsupportedHouseType)

// Strategy computes the material list for one house type.
//
// The set of implementations is closed: brickStrategy, concreteStrategy,
// woodenStrategy and blocksStrategy.
type Strategy interface {
	HouseType() entities.HouseType
	Estimate(in entities.CalculationInput) entities.EstimationResult
	sealed()
}

// StrategyFor resolves the strategy of a house type.
func StrategyFor(houseType entities.HouseType) (Strategy, error) {
	switch houseType {
	case entities.HouseTypeBrick:
		return brickStrategy{}, nil
	case entities.HouseTypeConcrete:
		return concreteStrategy{}, nil
	case entities.HouseTypeWooden:
		return woodenStrategy{}, nil
	case entities.HouseTypeBlocks:
		return blocksStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedArchetype, string(houseType))
	}
}

// Estimate dispatches the input to the strategy of houseType.
func Estimate(houseType entities.HouseType, in entities.CalculationInput) (entities.EstimationResult, error) {
	s, err := StrategyFor(houseType)
	if err != nil {
		return entities.EstimationResult{}, err
	}
	return s.Estimate(in), nil
}
