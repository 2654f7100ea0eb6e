package finboard

import (
	"slices"

	"finboard/date"
)

// RevenuePoint is one historical revenue bucket.
type RevenuePoint struct {
	Date    date.Date `json:"date"`
	Label   string    `json:"label"`
	Revenue Money     `json:"revenue"`
}

const (
	revenuePoints   = 12
	revenueStepDays = 30 // simulated month
)

// GenerateRevenue fabricates the revenue history: 12 points, 30 simulated
// days apart counting back from today, returned oldest first.
func GenerateRevenue() []RevenuePoint {
	points := make([]RevenuePoint, revenuePoints)
	today := date.Today()
	for i := range points {
		on := today.Add(-i * revenueStepDays)
		points[i] = RevenuePoint{
			Date:    on,
			Label:   on.Label(),
			Revenue: randMoney(50000, 150000),
		}
	}
	// generated newest first, views want chronological order
	slices.Reverse(points)
	return points
}
