package entities

import "time"

// Calculation is a persisted estimation owned by one user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// InputData keeps the submitted geometry so a result can be recomputed
// after formula or catalog changes.
type Calculation struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	HouseType  HouseType        `json:"house_type"`
	InputData  CalculationInput `json:"input_data"`
	ResultData EstimationResult `json:"result_data"`
	CreatedAt  time.Time        `json:"created_at"`
}
