package response

import (
	"time"

	"house_calculator/internal/domain/entities"
)

type MaterialLineResponse struct {
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	TotalPrice   *float64 `json:"total_price"`
}

type CalculationResultResponse struct {
	Materials []MaterialLineResponse `json:"materials"`
	TotalArea float64                `json:"total_area"`
	TotalCost *float64               `json:"total_cost"`
}

type CalculationResponse struct {
	ID         string                    `json:"id"`
	UserID     string                    `json:"user_id"`
	HouseType  string                    `json:"house_type"`
	InputData  entities.CalculationInput `json:"input_data"`
	ResultData CalculationResultResponse `json:"result_data"`
	CreatedAt  time.Time                 `json:"created_at"`
}

func FromEstimationResult(r entities.EstimationResult) CalculationResultResponse {
	lines := make([]MaterialLineResponse, 0, len(r.Materials))
	for _, l := range r.Materials {
		lines = append(lines, MaterialLineResponse{
			Name:         l.Name,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
			PricePerUnit: l.PricePerUnit,
			TotalPrice:   l.TotalPrice,
		})
	}
	return CalculationResultResponse{
		Materials: lines,
		TotalArea: r.TotalArea,
		TotalCost: r.TotalCost,
	}
}

func FromCalculation(c entities.Calculation) CalculationResponse {
	return CalculationResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		HouseType:  string(c.HouseType),
		InputData:  c.InputData,
		ResultData: FromEstimationResult(c.ResultData),
		CreatedAt:  c.CreatedAt,
	}
}

func FromCalculations(items []entities.Calculation) []CalculationResponse {
	out := make([]CalculationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCalculation(c))
	}
	return out
}
