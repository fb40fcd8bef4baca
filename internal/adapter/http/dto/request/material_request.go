package request

import (
	"strings"

	"house_calculator/internal/domain/entities"
)

type MaterialRequest struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	HouseType    *string `json:"house_type"`
	PricePerUnit float64 `json:"price_per_unit" binding:"gte=0"`
	Unit         string  `json:"unit" binding:"required"`
	Description  string  `json:"description"`
}

// ToMaterial converts the payload into a catalog entry. A blank house_type
// is treated as "applies to every house type".
func (r MaterialRequest) ToMaterial() (entities.Material, error) {
	m := entities.Material{
		Name:         r.Name,
		Type:         entities.MaterialType(strings.ToLower(strings.TrimSpace(r.Type))),
		PricePerUnit: r.PricePerUnit,
		Unit:         r.Unit,
		Description:  r.Description,
	}
	if r.HouseType != nil && strings.TrimSpace(*r.HouseType) != "" {
		ht, err := entities.ParseHouseType(*r.HouseType)
		if err != nil {
			return entities.Material{}, err
		}
		m.HouseType = &ht
	}
	return m, nil
}
