package repository

import (
	"testing"
	"time"

	"house_calculator/internal/domain/entities"
)

func sampleCalculation() entities.Calculation {
	price := 0.5
	total := 654.0
	return entities.Calculation{
		ID:        "c1",
		UserID:    "user-1",
		HouseType: entities.HouseTypeBrick,
		InputData: entities.CalculationInput{
			HouseType: entities.HouseTypeBrick,
			Walls:     []entities.Wall{{Width: 1, Length: 10, Height: 2.5, Material: "Brick"}},
			Roof:      entities.Roof{Material: "tile", Length: 10, Width: 8},
		},
		ResultData: entities.EstimationResult{
			Materials: []entities.MaterialLine{{Name: "Standard Brick", Quantity: 1308, Unit: "piece", PricePerUnit: &price, TotalPrice: &total}},
			TotalArea: 121,
			TotalCost: &total,
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCalculationItemMapping(t *testing.T) {
	c := sampleCalculation()
	it, err := toCalculationItem(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.CreatedAt != "2026-03-01T12:00:00Z" || it.HouseType != "brick" {
		t.Fatalf("unexpected item: %+v", it)
	}

	back, err := fromCalculationItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != c.ID || back.UserID != c.UserID || !back.CreatedAt.Equal(c.CreatedAt) {
		t.Fatalf("unexpected calculation: %+v", back)
	}
	if back.ResultData.TotalCost == nil || *back.ResultData.TotalCost != 654 {
		t.Fatalf("expected total cost to survive storage: %+v", back.ResultData)
	}
	if len(back.InputData.Walls) != 1 || back.InputData.Walls[0].Width != 1 {
		t.Fatalf("expected walls to survive storage: %+v", back.InputData)
	}
}

func TestCalculationItemMapping_InvalidJSON(t *testing.T) {
	if _, err := fromCalculationItem(calculationItem{ID: "c1", ResultData: "{"}); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if _, err := fromCalculationRow(calculationRow{ID: "c1", InputData: []byte("{}"), ResultData: []byte("nope")}); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestMaterialItemMapping(t *testing.T) {
	blocks := entities.HouseTypeBlocks
	m := entities.Material{ID: "m1", Name: "Gas Block", Type: entities.MaterialTypeBlocks, HouseType: &blocks, PricePerUnit: 2, Unit: "piece"}

	it := toMaterialItem(m)
	if it.HouseType != "blocks" {
		t.Fatalf("unexpected item: %+v", it)
	}
	back := fromMaterialItem(it)
	if back.HouseType == nil || *back.HouseType != blocks || back.PricePerUnit != 2 {
		t.Fatalf("unexpected material: %+v", back)
	}

	shared := fromMaterialItem(materialItem{ID: "m2", Name: "Nails"})
	if shared.HouseType != nil {
		t.Fatalf("expected nil house type, got %v", *shared.HouseType)
	}
}

func TestMaterialRowMapping(t *testing.T) {
	concrete := entities.HouseTypeConcrete
	row := toMaterialRow(entities.Material{ID: "m1", Name: "Concrete Mix", Type: entities.MaterialTypeConcrete, HouseType: &concrete, PricePerUnit: 0.08, Unit: "kg"})
	if !row.HouseType.Valid || row.HouseType.String != "concrete" || row.Description.Valid {
		t.Fatalf("unexpected row: %+v", row)
	}

	back := fromMaterialRow(row)
	if back.HouseType == nil || *back.HouseType != concrete || back.Description != "" {
		t.Fatalf("unexpected material: %+v", back)
	}

	if shared := fromMaterialRow(materialRow{ID: "m2"}); shared.HouseType != nil {
		t.Fatalf("expected nil house type")
	}
}

func TestCalculationRowMapping(t *testing.T) {
	c := sampleCalculation()
	row, err := toCalculationRow(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := fromCalculationRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != "c1" || len(back.ResultData.Materials) != 1 || back.ResultData.Materials[0].Quantity != 1308 {
		t.Fatalf("unexpected calculation: %+v", back)
	}
}

func TestSortMaterialItems(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	items := []materialItem{
		{ID: "c", Name: "Cement", CreatedAt: base.Add(time.Second).Format(materialTimeLayout)},
		{ID: "b", Name: "Cement", CreatedAt: base.Add(500 * time.Millisecond).Format(materialTimeLayout)},
		{ID: "a", Name: "Brick", CreatedAt: base.Format(materialTimeLayout)},
		{ID: "z", Name: "Legacy"},
		{ID: "d", Name: "Sand", CreatedAt: base.Format(materialTimeLayout)},
	}

	sortMaterialItems(items)

	want := []string{"z", "a", "d", "b", "c"}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("expected %s at %d, got %s", id, i, items[i].ID)
		}
	}
}
