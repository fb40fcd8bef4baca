package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"house_calculator/internal/domain/entities"
)

func TestFromCalculation(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	c := entities.Calculation{
		ID:        "c1",
		UserID:    "u1",
		HouseType: entities.HouseTypeWooden,
		ResultData: entities.EstimationResult{
			Materials: []entities.MaterialLine{{Name: "Timber/Logs", Quantity: 5.1, Unit: entities.UnitCubicMeter}},
			TotalArea: 90,
		},
		CreatedAt: now,
	}

	r := FromCalculation(c)
	if r.ID != "c1" || r.HouseType != "wooden" || !r.CreatedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", r)
	}

	body, err := json.Marshal(r.ResultData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unpriced lines and totals are explicit nulls on the wire.
	if !strings.Contains(string(body), `"price_per_unit":null`) || !strings.Contains(string(body), `"total_cost":null`) {
		t.Fatalf("expected null prices, got %s", body)
	}
}

func TestFromCalculations_EmptyIsArray(t *testing.T) {
	body, _ := json.Marshal(FromCalculations(nil))
	if string(body) != "[]" {
		t.Fatalf("expected [], got %s", body)
	}
}

func TestFromMaterial(t *testing.T) {
	brick := entities.HouseTypeBrick
	r := FromMaterial(entities.Material{ID: "m1", Name: "Standard Brick", Type: entities.MaterialTypeBrick, HouseType: &brick, PricePerUnit: 0.5, Unit: "piece"})
	if r.HouseType == nil || *r.HouseType != "brick" {
		t.Fatalf("unexpected house type: %v", r.HouseType)
	}
	if r.Description != nil {
		t.Fatalf("expected nil description, got %q", *r.Description)
	}

	shared := FromMaterial(entities.Material{ID: "m2", Name: "Nails", Description: "galvanized"})
	if shared.HouseType != nil || shared.Description == nil || *shared.Description != "galvanized" {
		t.Fatalf("unexpected response: %+v", shared)
	}
}
