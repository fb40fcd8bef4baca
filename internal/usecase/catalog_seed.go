package usecase

import "house_calculator/internal/domain/entities"

func seedMaterial(name string, t entities.MaterialType, ht entities.HouseType, price float64, unit, description string) entities.Material {
	return entities.Material{
		Name:         name,
		Type:         t,
		HouseType:    &ht,
		PricePerUnit: price,
		Unit:         unit,
		Description:  description,
	}
}

// DefaultCatalog returns the sample materials loaded into an empty catalog.
func DefaultCatalog() []entities.Material {
	const (
		piece = entities.UnitPiece
		kg    = entities.UnitKilogram
		m2    = entities.UnitSquareMeter
		m3    = entities.UnitCubicMeter
	)
	brick, concrete := entities.HouseTypeBrick, entities.HouseTypeConcrete
	wooden, blocks := entities.HouseTypeWooden, entities.HouseTypeBlocks

	return []entities.Material{
		seedMaterial("Standard Brick", entities.MaterialTypeBrick, brick, 0.5, piece, "Standard building brick"),
		seedMaterial("Cement Mortar", entities.MaterialTypeOther, brick, 0.05, kg, "Mortar for brick laying"),
		seedMaterial("Mineral Wool", entities.MaterialTypeInsulation, brick, 5.0, m2, "Insulation material"),
		seedMaterial("Metal Roof Panel", entities.MaterialTypeRoofing, brick, 15.0, m2, "Metal roofing material"),
		seedMaterial("Shingle", entities.MaterialTypeRoofing, brick, 12.0, m2, "Shingle roofing material"),
		seedMaterial("Vinyl Siding", entities.MaterialTypeOther, brick, 10.0, m2, "Exterior siding material"),

		seedMaterial("Concrete Mix", entities.MaterialTypeConcrete, concrete, 0.1, kg, "Concrete for construction"),
		seedMaterial("Reinforcement Steel", entities.MaterialTypeOther, concrete, 2.0, m2, "Steel reinforcement for concrete"),
		seedMaterial("Fiberglass Insulation", entities.MaterialTypeInsulation, concrete, 4.5, m2, "Insulation material"),
		seedMaterial("Metal Roof Panel", entities.MaterialTypeRoofing, concrete, 15.0, m2, "Metal roofing material"),
		seedMaterial("Brick Veneer", entities.MaterialTypeOther, concrete, 12.0, m2, "Decorative brick facing"),

		seedMaterial("Timber", entities.MaterialTypeWood, wooden, 300.0, m3, "Construction timber"),
		seedMaterial("Log", entities.MaterialTypeWood, wooden, 350.0, m3, "Construction logs"),
		seedMaterial("Polyethylene Insulation", entities.MaterialTypeInsulation, wooden, 3.0, m2, "Insulation material"),
		seedMaterial("Wooden Roof Board", entities.MaterialTypeRoofing, wooden, 10.0, m2, "Wooden roof material"),
		seedMaterial("Metal Roof Frame", entities.MaterialTypeOther, wooden, 25.0, m2, "Metal framework for roof"),

		seedMaterial("Gas Block", entities.MaterialTypeBlocks, blocks, 2.0, piece, "Gas-concrete building block"),
		seedMaterial("Foam Block", entities.MaterialTypeBlocks, blocks, 1.8, piece, "Foam-concrete building block"),
		seedMaterial("Special Mortar", entities.MaterialTypeOther, blocks, 0.08, kg, "Special mortar for blocks"),
		seedMaterial("Expanded Polystyrene", entities.MaterialTypeInsulation, blocks, 2.5, m2, "Insulation material"),
		seedMaterial("Corrugated Roofing", entities.MaterialTypeRoofing, blocks, 8.0, m2, "Corrugated roofing material"),
	}
}
