package estimator

import "house_calculator/internal/domain/entities"

const (
	brickLength = 0.25
	brickHeight = 0.065

	brickMortarPerArea = 0.02 // m³ of mortar per m² of wall
)

// brickWall counts the wall width in bricks laid across it.
type brickWall struct {
	surface
	layers float64
}

func toBrickWall(w entities.Wall) brickWall {
	return brickWall{surface: surface{length: w.Length, height: w.Height}, layers: w.Width}
}

type masonryTotals struct {
	area       float64
	units      float64
	mortarKg   float64
	insulation float64
	finishing  float64
}

type brickStrategy struct{}

func (brickStrategy) sealed() {}

func (brickStrategy) HouseType() entities.HouseType { return entities.HouseTypeBrick }

func (brickStrategy) Estimate(in entities.CalculationInput) entities.EstimationResult {
	f := in.Foundation
	var materials []entities.MaterialLine

	if f.Type == entities.FoundationTypeReinforcedConcrete {
		volume := foundationVolume(f)
		materials = append(materials,
			line("Concrete Mix", volume*concreteDensity, entities.UnitKilogram),
			line("Reinforcement Steel", volume*foundationSteelRatio*steelAreaPerCubic, entities.UnitSquareMeter),
		)
	}

	if f.HasBasement {
		materials = append(materials, line("Basement Walls Material", 2*(f.Width+f.Length)*f.Depth, entities.UnitSquareMeter))
		if f.HasBasementFloor {
			materials = append(materials, line("Basement Floor Material", f.Width*f.Length, entities.UnitSquareMeter))
		}
	}

	walls := fold(mapWalls(in.Walls, toBrickWall), masonryTotals{}, func(t masonryTotals, w brickWall) masonryTotals {
		area := w.area()
		bricksPerM2 := 1 / (brickLength * brickHeight) * w.layers
		t.area += area
		t.units += area * bricksPerM2 * openingDeduction
		t.mortarKg += area * brickMortarPerArea * mortarDensity
		t.insulation += area
		return t
	})

	materials = append(materials,
		line("Standard Brick", round0(walls.units), entities.UnitPiece),
		line("Cement Mortar", round0(walls.mortarKg), entities.UnitKilogram),
		line("Insulation Material", round2(walls.insulation), entities.UnitSquareMeter),
	)

	roof := roofArea(in.Roof)
	materials = append(materials, roofLine(in.Roof, roof))

	return entities.EstimationResult{
		Materials: materials,
		TotalArea: round2(walls.area + roof),
	}
}
