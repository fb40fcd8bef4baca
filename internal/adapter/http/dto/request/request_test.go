package request

import (
	"errors"
	"testing"

	"house_calculator/internal/domain/entities"
)

func TestCalculationRequest_ToInput(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		r := CalculationRequest{
			HouseType:  " Brick ",
			Foundation: FoundationRequest{Width: 10, Depth: 1, Length: 12, Type: "Железобетон", HasBasement: true},
			Walls:      []WallRequest{{Width: 1, Length: 10, Height: 2.5, Material: "Brick", Insulation: "Mineral Wool", Finishing: "Plaster"}},
			Roof:       RoofRequest{Type: "Скатная", Material: "Shingle", Length: 10, Width: 8},
		}

		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.HouseType != entities.HouseTypeBrick {
			t.Fatalf("expected brick, got %s", in.HouseType)
		}
		if in.Foundation.Type != entities.FoundationTypeReinforcedConcrete || !in.Foundation.HasBasement {
			t.Fatalf("unexpected foundation: %+v", in.Foundation)
		}
		if len(in.Walls) != 1 || in.Walls[0].Finishing != "Plaster" || in.Walls[0].Height != 2.5 {
			t.Fatalf("unexpected walls: %+v", in.Walls)
		}
		if in.Roof.Material != "Shingle" || in.Roof.Width != 8 {
			t.Fatalf("unexpected roof: %+v", in.Roof)
		}
	})

	t.Run("unsupported house type", func(t *testing.T) {
		_, err := CalculationRequest{HouseType: "straw"}.ToInput()
		if !errors.Is(err, entities.ErrUnsupportedHouseType) {
			t.Fatalf("expected ErrUnsupportedHouseType, got %v", err)
		}
	})

	t.Run("no walls yields empty slice", func(t *testing.T) {
		in, err := CalculationRequest{HouseType: "wooden"}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Walls == nil || len(in.Walls) != 0 {
			t.Fatalf("expected empty walls, got %v", in.Walls)
		}
	})
}

func TestMaterialRequest_ToMaterial(t *testing.T) {
	blank := "  "
	blocks := "blocks"
	bad := "igloo"

	m, err := MaterialRequest{Name: "Nails", Type: "Other", PricePerUnit: 0.01, Unit: "piece", HouseType: &blank}.ToMaterial()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.HouseType != nil || m.Type != entities.MaterialTypeOther {
		t.Fatalf("unexpected material: %+v", m)
	}

	m, err = MaterialRequest{Name: "Gas Block", Type: "blocks", Unit: "piece", HouseType: &blocks}.ToMaterial()
	if err != nil || m.HouseType == nil || *m.HouseType != entities.HouseTypeBlocks {
		t.Fatalf("unexpected material: %+v %v", m, err)
	}

	if _, err := (MaterialRequest{Name: "Ice", Type: "other", Unit: "piece", HouseType: &bad}).ToMaterial(); !errors.Is(err, entities.ErrUnsupportedHouseType) {
		t.Fatalf("expected ErrUnsupportedHouseType, got %v", err)
	}
}
