package estimator

import "house_calculator/internal/domain/entities"

const roofTimberThickness = 0.04 // m

// timberWall carries the log/beam thickness in centimeters. The wall
// material (species) does not change the quantity.
type timberWall struct {
	surface
	thicknessCM float64
}

func toTimberWall(w entities.Wall) timberWall {
	return timberWall{surface: surface{length: w.Length, height: w.Height}, thicknessCM: w.Width}
}

type timberTotals struct {
	area       float64
	woodVolume float64
	insulation float64
}

type woodenStrategy struct{}

func (woodenStrategy) sealed() {}

func (woodenStrategy) HouseType() entities.HouseType { return entities.HouseTypeWooden }

func (woodenStrategy) Estimate(in entities.CalculationInput) entities.EstimationResult {
	f := in.Foundation
	slabVolume := f.Width * f.Length * f.Depth
	materials := []entities.MaterialLine{
		line("Foundation Concrete", round0(slabVolume*concreteDensity), entities.UnitKilogram),
	}

	walls := fold(mapWalls(in.Walls, toTimberWall), timberTotals{}, func(t timberTotals, w timberWall) timberTotals {
		area := w.area()
		t.area += area
		t.woodVolume += area * w.thicknessCM / 100 * openingDeduction
		t.insulation += area
		return t
	})

	materials = append(materials,
		line("Timber/Logs", round2(walls.woodVolume), entities.UnitCubicMeter),
		line("Insulation Material", round2(walls.insulation), entities.UnitSquareMeter),
	)

	roof := roofArea(in.Roof)
	if in.Roof.Type == entities.RoofTypeWooden {
		materials = append(materials, line("Roof Timber", round2(roof*roofTimberThickness), entities.UnitCubicMeter))
	}
	materials = append(materials, roofLine(in.Roof, roof))

	return entities.EstimationResult{
		Materials: materials,
		TotalArea: round2(walls.area + roof),
	}
}
