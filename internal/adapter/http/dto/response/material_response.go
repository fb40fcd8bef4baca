package response

import "house_calculator/internal/domain/entities"

type MaterialResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	HouseType    *string `json:"house_type"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
	Description  *string `json:"description"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	r := MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Type:         string(m.Type),
		PricePerUnit: m.PricePerUnit,
		Unit:         m.Unit,
	}
	if m.HouseType != nil {
		ht := string(*m.HouseType)
		r.HouseType = &ht
	}
	if m.Description != "" {
		d := m.Description
		r.Description = &d
	}
	return r
}

func FromMaterials(items []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMaterial(m))
	}
	return out
}
