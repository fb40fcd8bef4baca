package entities

// Units emitted by the estimator.
const (
	UnitPiece       = "piece"
	UnitKilogram    = "kg"
	UnitSquareMeter = "m²"
	UnitCubicMeter  = "m³"
)

// MaterialLine is one itemized quantity of the estimation result.
//
// PricePerUnit and TotalPrice are only set when the catalog has a price for
// the line's name.
type MaterialLine struct {
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	TotalPrice   *float64 `json:"total_price"`
}

type EstimationResult struct {
	Materials []MaterialLine `json:"materials"`
	TotalArea float64        `json:"total_area"`
	TotalCost *float64       `json:"total_cost"`
}
