package estimator

import (
	"testing"

	"house_calculator/internal/domain/entities"
)

func TestNewPriceList(t *testing.T) {
	brick := entities.HouseTypeBrick
	wooden := entities.HouseTypeWooden
	catalog := []entities.Material{
		{Name: "Standard Brick", HouseType: &brick, PricePerUnit: 0.5},
		{Name: "Standard Brick", HouseType: &brick, PricePerUnit: 0.9},
		{Name: "Timber", HouseType: &wooden, PricePerUnit: 300},
		{Name: "Insulation Material", PricePerUnit: 4},
	}

	prices := NewPriceList(entities.HouseTypeBrick, catalog)
	if len(prices) != 2 {
		t.Fatalf("expected 2 prices, got %v", prices)
	}
	if prices["Standard Brick"] != 0.5 {
		t.Fatalf("expected first price to win, got %v", prices["Standard Brick"])
	}
	if _, ok := prices["Timber"]; ok {
		t.Fatalf("wooden material must not price a brick house")
	}
	if prices["Insulation Material"] != 4 {
		t.Fatalf("expected shared material price, got %v", prices["Insulation Material"])
	}
}

func TestApplyPrices(t *testing.T) {
	res := entities.EstimationResult{
		Materials: []entities.MaterialLine{
			{Name: "Standard Brick", Quantity: 1308, Unit: entities.UnitPiece},
			{Name: "Cement Mortar", Quantity: 1000, Unit: entities.UnitKilogram},
			{Name: "Roof Material (tile)", Quantity: 96, Unit: entities.UnitSquareMeter},
		},
		TotalArea: 121,
	}

	t.Run("priced", func(t *testing.T) {
		out := ApplyPrices(res, PriceList{"Standard Brick": 0.5, "Cement Mortar": 0.05})
		if out.TotalCost == nil || *out.TotalCost != 704 {
			t.Fatalf("expected total cost 704, got %v", out.TotalCost)
		}
		if p := out.Materials[0].TotalPrice; p == nil || *p != 654 {
			t.Fatalf("unexpected brick total price %v", p)
		}
		if out.Materials[2].PricePerUnit != nil {
			t.Fatalf("expected unpriced roof line")
		}
		if res.Materials[0].PricePerUnit != nil {
			t.Fatalf("input result must not be modified")
		}
		if out.TotalArea != 121 {
			t.Fatalf("expected total area preserved, got %v", out.TotalArea)
		}
	})

	t.Run("nothing priced", func(t *testing.T) {
		out := ApplyPrices(res, PriceList{"Timber": 300})
		if out.TotalCost != nil {
			t.Fatalf("expected nil total cost, got %v", *out.TotalCost)
		}
	})
}
