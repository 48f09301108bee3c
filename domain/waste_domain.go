package domain

const (
	RiskLow     = "Low"
	RiskMedium  = "Medium"
	RiskHigh    = "High"
	RiskExpired = "Expired"
)

var (
	MessageSuccessWasteSummary = "waste summary retrieved successfully"
	MessageSuccessWeeklyWaste  = "weekly waste retrieved successfully"

	MessageFailedWasteSummary = "failed to retrieve waste summary"
	MessageFailedWeeklyWaste  = "failed to retrieve weekly waste"
)

type (
	RiskSummary struct {
		Low     int `json:"low"`
		Medium  int `json:"medium"`
		High    int `json:"high"`
		Expired int `json:"expired"`
	}

	WasteSummaryResponse struct {
		Summary        RiskSummary           `json:"summary"`
		ExpiredItems   []GroceryItemResponse `json:"expired_items"`
		TotalWasteCost float64               `json:"total_waste_cost"`
		PortionWaste   float64               `json:"portion_waste"`
		Tips           []string              `json:"tips"`
	}

	WeeklyWasteEntry struct {
		Week         string  `json:"week"`
		ExpiredWaste float64 `json:"expired_waste"`
		PortionWaste float64 `json:"portion_waste"`
	}
)
