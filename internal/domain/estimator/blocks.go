package estimator

import "house_calculator/internal/domain/entities"

const (
	blockLength = 0.6
	blockHeight = 0.2

	blockMortarPerArea = 0.01 // m³ of mortar per m² of wall
)

// blockWall counts the wall width in blocks laid across it.
type blockWall struct {
	surface
	layers    float64
	material  string
	finishing string
}

func toBlockWall(w entities.Wall) blockWall {
	return blockWall{
		surface:   surface{length: w.Length, height: w.Height},
		layers:    w.Width,
		material:  w.Material,
		finishing: w.Finishing,
	}
}

type blockTotals struct {
	masonryTotals
	blockName string
}

type blocksStrategy struct{}

func (blocksStrategy) sealed() {}

func (blocksStrategy) HouseType() entities.HouseType { return entities.HouseTypeBlocks }

func (blocksStrategy) Estimate(in entities.CalculationInput) entities.EstimationResult {
	materials := []entities.MaterialLine{
		line("Foundation Concrete", round0(foundationVolume(in.Foundation)*concreteDensity), entities.UnitKilogram),
	}

	// The block line is named after the last wall's material.
	walls := fold(mapWalls(in.Walls, toBlockWall), blockTotals{}, func(t blockTotals, w blockWall) blockTotals {
		area := w.area()
		blocksPerM2 := 1 / (blockLength * blockHeight) * w.layers
		t.blockName = w.material
		t.area += area
		t.units += area * blocksPerM2 * openingDeduction
		t.mortarKg += area * blockMortarPerArea * mortarDensity
		t.insulation += area
		if w.finishing != "" {
			t.finishing += area
		}
		return t
	})

	materials = append(materials,
		line(walls.blockName, round0(walls.units), entities.UnitPiece),
		line("Special Mortar", round0(walls.mortarKg), entities.UnitKilogram),
		line("Insulation Material", round2(walls.insulation), entities.UnitSquareMeter),
	)
	if walls.finishing > 0 {
		materials = append(materials, line("Wall Finishing Material", round2(walls.finishing), entities.UnitSquareMeter))
	}

	roof := roofArea(in.Roof)
	materials = append(materials, roofLine(in.Roof, roof))

	return entities.EstimationResult{
		Materials: materials,
		TotalArea: round2(walls.area + roof),
	}
}
