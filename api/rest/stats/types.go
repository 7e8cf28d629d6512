package stats

import (
	"codeberg.org/formboard/server/formboard/stats"
)

// ActivityResponse wraps the daily histogram with the window it covers
type ActivityResponse struct {
	Days     int                   `json:"days"`
	Activity []stats.ActivityEntry `json:"activity"`
}

type RecentActivityResponse struct {
	Activity []stats.RecentActivity `json:"activity"`
}
