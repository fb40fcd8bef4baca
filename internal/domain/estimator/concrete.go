package estimator

import "house_calculator/internal/domain/entities"

// concreteWall carries the monolithic wall thickness in centimeters.
type concreteWall struct {
	surface
	thicknessCM float64
	finishing   string
}

func toConcreteWall(w entities.Wall) concreteWall {
	return concreteWall{
		surface:     surface{length: w.Length, height: w.Height},
		thicknessCM: w.Width,
		finishing:   w.Finishing,
	}
}

type concreteTotals struct {
	area       float64
	concreteKg float64
	steelArea  float64
	insulation float64
	finishing  float64
}

// concreteStrategy applies no opening deduction to wall quantities.
type concreteStrategy struct{}

func (concreteStrategy) sealed() {}

func (concreteStrategy) HouseType() entities.HouseType { return entities.HouseTypeConcrete }

func (concreteStrategy) Estimate(in entities.CalculationInput) entities.EstimationResult {
	volume := foundationVolume(in.Foundation)
	materials := []entities.MaterialLine{
		line("Foundation Concrete", volume*concreteDensity, entities.UnitKilogram),
		line("Foundation Reinforcement Steel", volume*foundationSteelRatio*steelAreaPerCubic, entities.UnitSquareMeter),
	}

	walls := fold(mapWalls(in.Walls, toConcreteWall), concreteTotals{}, func(t concreteTotals, w concreteWall) concreteTotals {
		area := w.area()
		wallVolume := area * w.thicknessCM / 100
		t.area += area
		t.concreteKg += wallVolume * concreteDensity
		t.steelArea += wallVolume * wallSteelRatio * steelAreaPerCubic
		t.insulation += area
		if w.finishing != "" {
			t.finishing += area
		}
		return t
	})

	materials = append(materials,
		line("Wall Concrete", round0(walls.concreteKg), entities.UnitKilogram),
		line("Wall Reinforcement Steel", round2(walls.steelArea), entities.UnitSquareMeter),
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
