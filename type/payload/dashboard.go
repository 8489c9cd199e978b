package payload

type DashboardCounts struct {
	Teams   int64 `json:"teams"`
	Courses int64 `json:"courses"`
	Events  int64 `json:"events"`
}

type DashboardStats struct {
	Total      DashboardCounts `json:"total"`
	Last7Days  DashboardCounts `json:"last7days"`
	Last30Days DashboardCounts `json:"last30days"`
	Last90Days DashboardCounts `json:"last90days"`
}
