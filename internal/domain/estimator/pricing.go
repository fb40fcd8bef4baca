package estimator

import "house_calculator/internal/domain/entities"

// PriceList maps a material line name to its unit price.
type PriceList map[string]float64

// NewPriceList keeps the catalog materials that apply to houseType. When two
// materials share a name the first one wins.
func NewPriceList(houseType entities.HouseType, catalog []entities.Material) PriceList {
	prices := make(PriceList, len(catalog))
	for _, m := range catalog {
		if !m.AppliesTo(houseType) {
			continue
		}
		if _, ok := prices[m.Name]; ok {
			continue
		}
		prices[m.Name] = m.PricePerUnit
	}
	return prices
}

// ApplyPrices returns a copy of result with unit and total prices filled for
// every line found in prices. TotalCost stays nil when nothing was priced.
func ApplyPrices(result entities.EstimationResult, prices PriceList) entities.EstimationResult {
	out := entities.EstimationResult{
		Materials: make([]entities.MaterialLine, len(result.Materials)),
		TotalArea: result.TotalArea,
	}

	var total float64
	priced := false
	for i, m := range result.Materials {
		if unit, ok := prices[m.Name]; ok {
			p := unit
			lineTotal := round2(m.Quantity * unit)
			m.PricePerUnit = &p
			m.TotalPrice = &lineTotal
			total += lineTotal
			priced = true
		}
		out.Materials[i] = m
	}
	if priced {
		t := round2(total)
		out.TotalCost = &t
	}
	return out
}
