package request

import (
	"house_calculator/internal/domain/entities"
)

type FoundationRequest struct {
	Width            float64 `json:"width" binding:"gte=0"`
	Depth            float64 `json:"depth" binding:"gte=0"`
	Length           float64 `json:"length" binding:"gte=0"`
	Type             string  `json:"type"`
	HasBasement      bool    `json:"hasBasement"`
	HasBasementFloor bool    `json:"hasBasementFloor"`
	FloorMaterial    string  `json:"floorMaterial"`
	Finishing        string  `json:"finishing"`
}

// WallRequest carries one wall. Width is the number of bricks/blocks across
// the wall for brick and blocks houses, or the thickness in centimeters for
// concrete and wooden houses.
type WallRequest struct {
	Width      float64 `json:"width" binding:"gte=0"`
	Length     float64 `json:"length" binding:"gte=0"`
	Height     float64 `json:"height" binding:"gte=0"`
	Material   string  `json:"material"`
	Insulation string  `json:"insulation"`
	Finishing  string  `json:"finishing"`
}

type RoofRequest struct {
	Type     string  `json:"type"`
	Material string  `json:"material"`
	Length   float64 `json:"length" binding:"gte=0"`
	Width    float64 `json:"width" binding:"gte=0"`
}

// CalculationRequest is the payload of POST /calculations and
// POST /calculations/calculate.
type CalculationRequest struct {
	HouseType  string            `json:"houseType" binding:"required"`
	Foundation FoundationRequest `json:"foundation"`
	Walls      []WallRequest     `json:"walls" binding:"dive"`
	Roof       RoofRequest       `json:"roof"`
}

// ToInput converts the payload into the estimator input. It fails with
// entities.ErrUnsupportedHouseType for an unknown houseType.
func (r CalculationRequest) ToInput() (entities.CalculationInput, error) {
	ht, err := entities.ParseHouseType(r.HouseType)
	if err != nil {
		return entities.CalculationInput{}, err
	}

	walls := make([]entities.Wall, 0, len(r.Walls))
	for _, w := range r.Walls {
		walls = append(walls, entities.Wall{
			Width:      w.Width,
			Length:     w.Length,
			Height:     w.Height,
			Material:   w.Material,
			Insulation: w.Insulation,
			Finishing:  w.Finishing,
		})
	}

	return entities.CalculationInput{
		HouseType: ht,
		Foundation: entities.Foundation{
			Width:            r.Foundation.Width,
			Depth:            r.Foundation.Depth,
			Length:           r.Foundation.Length,
			Type:             r.Foundation.Type,
			HasBasement:      r.Foundation.HasBasement,
			HasBasementFloor: r.Foundation.HasBasementFloor,
			FloorMaterial:    r.Foundation.FloorMaterial,
			Finishing:        r.Foundation.Finishing,
		},
		Walls: walls,
		Roof: entities.Roof{
			Type:     r.Roof.Type,
			Material: r.Roof.Material,
			Length:   r.Roof.Length,
			Width:    r.Roof.Width,
		},
	}, nil
}

// ListCalculationsQuery binds ?skip=&limit=.
type ListCalculationsQuery struct {
	Skip  int `form:"skip" binding:"gte=0"`
	Limit int `form:"limit" binding:"gte=0"`
}
