package model

// DashboardCounts are the aggregate counters shown on the admin dashboard.
type DashboardCounts struct {
	Companies int `json:"companies"`
	Cars      int `json:"cars"`
	Rentals   int `json:"rentals"`
}
