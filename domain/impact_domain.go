package domain

var (
	MessageSuccessGetImpact = "impact retrieved successfully"
	MessageFailedGetImpact  = "failed to retrieve impact"
)

type ImpactResponse struct {
	ItemsSaved   int64   `json:"items_saved"`
	ItemsDonated int64   `json:"items_donated"`
	UsageRate    float64 `json:"usage_rate"`
	CurrentItems int64   `json:"current_items"`
	TotalAdded   int64   `json:"total_added"`
}
