package entities

import (
	"errors"
	"strings"
)

var ErrUnsupportedHouseType = errors.New("unsupported house type")

// HouseType is the construction archetype that selects the estimation strategy.

type HouseType string

const (
	HouseTypeBrick    HouseType = "brick"
	HouseTypeConcrete HouseType = "concrete"
	HouseTypeWooden   HouseType = "wooden"
	HouseTypeBlocks   HouseType = "blocks"
)

var houseTypes = []HouseType{HouseTypeBrick, HouseTypeConcrete, HouseTypeWooden, HouseTypeBlocks}

// HouseTypes returns the supported archetypes in a stable order.
func HouseTypes() []HouseType {
	out := make([]HouseType, len(houseTypes))
	copy(out, houseTypes)
	return out
}

func ParseHouseType(v string) (HouseType, error) {
	ht := HouseType(strings.ToLower(strings.TrimSpace(v)))
	if !ht.Valid() {
		return "", ErrUnsupportedHouseType
	}
	return ht, nil
}

func (h HouseType) Valid() bool {
	for _, ht := range houseTypes {
		if h == ht {
			return true
		}
	}
	return false
}

// Foundation describes the slab/strip foundation geometry in meters.
//
// Type is a free-text category. The brick strategy only emits concrete and
// steel lines for FoundationTypeReinforcedConcrete.
type Foundation struct {
	Width            float64 `json:"width"`
	Depth            float64 `json:"depth"`
	Length           float64 `json:"length"`
	Type             string  `json:"type"`
	HasBasement      bool    `json:"hasBasement"`
	HasBasementFloor bool    `json:"hasBasementFloor"`
	FloorMaterial    string  `json:"floorMaterial,omitempty"`
	Finishing        string  `json:"finishing,omitempty"`
}

const (
	FoundationTypeReinforcedConcrete = "Железобетон"
	RoofTypeWooden                   = "Деревянная"
)

// Wall is one wall of the building as captured by the calculation form.
//
// Width is interpreted per house type:
//   - brick, blocks: number of bricks/blocks across the wall
//   - concrete, wooden: thickness in centimeters
type Wall struct {
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	Height     float64 `json:"height"`
	Material   string  `json:"material"`
	Insulation string  `json:"insulation"`
	Finishing  string  `json:"finishing,omitempty"`
}

type Roof struct {
	Type     string  `json:"type"`
	Material string  `json:"material"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
}

// CalculationInput is the geometry submitted for one estimation.
type CalculationInput struct {
	HouseType  HouseType  `json:"houseType"`
	Foundation Foundation `json:"foundation"`
	Walls      []Wall     `json:"walls"`
	Roof       Roof       `json:"roof"`
}
