package analytics

import "github.com/rogerio-castellano/paintchain/internal/models"

const (
	utilizationWeight = 1.5
	healthNoiseMax    = 20.0
	maxHealthScore    = 100
)

// DealerHealth is a dealer with its derived health score.
type DealerHealth struct {
	models.Dealer
	HealthScore int `json:"healthScore"`
}

// Utilization is orders per unit of inventory, as a percentage. Zero
// inventory is treated as one unit.
func Utilization(orders, inventory int) float64 {
	return float64(orders) / float64(max(inventory, 1)) * 100
}

// ScoreDealers scores every dealer, preserving input order.
func ScoreDealers(idx *Index, dealers []models.Dealer, src Source) []DealerHealth {
	out := make([]DealerHealth, 0, len(dealers))
	for _, d := range dealers {
		u := Utilization(idx.DealerOrders(d.ID), d.Inventory)
		score := round(u*utilizationWeight + src.Float(0, healthNoiseMax))
		out = append(out, DealerHealth{
			Dealer:      d,
			HealthScore: min(maxHealthScore, max(0, score)),
		})
	}
	return out
}
