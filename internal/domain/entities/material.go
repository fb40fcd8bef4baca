package entities

// MaterialType groups catalog materials.

type MaterialType string

const (
	MaterialTypeBrick      MaterialType = "brick"
	MaterialTypeConcrete   MaterialType = "concrete"
	MaterialTypeWood       MaterialType = "wood"
	MaterialTypeBlocks     MaterialType = "blocks"
	MaterialTypeInsulation MaterialType = "insulation"
	MaterialTypeRoofing    MaterialType = "roofing"
	MaterialTypeOther      MaterialType = "other"
)

func (m MaterialType) Valid() bool {
	switch m {
	case MaterialTypeBrick, MaterialTypeConcrete, MaterialTypeWood, MaterialTypeBlocks,
		MaterialTypeInsulation, MaterialTypeRoofing, MaterialTypeOther:
		return true
	}
	return false
}

// Material is a priced catalog entry.
//
// A nil HouseType means the material applies to every house type.
type Material struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         MaterialType `json:"type"`
	HouseType    *HouseType   `json:"house_type,omitempty"`
	PricePerUnit float64      `json:"price_per_unit"`
	Unit         string       `json:"unit"`
	Description  string       `json:"description,omitempty"`
}

// AppliesTo reports whether the material is priced for the given house type.
func (m Material) AppliesTo(h HouseType) bool {
	return m.HouseType == nil || *m.HouseType == h
}
