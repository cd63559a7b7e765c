package analytics

import "github.com/rogerio-castellano/paintchain/internal/models"

const (
	orderWeight       = 0.7
	searchWeight      = 0.05
	searchConversion  = 0.1
	avgUnitPrice      = 400
	confidenceFloor   = 85.0
	confidenceCeiling = 95.0
)

type DemandForecast struct {
	Region          string  `json:"region"`
	CurrentDemand   int     `json:"currentDemand"`
	PredictedDemand int     `json:"predictedDemand"`
	Confidence      float64 `json:"confidence"`
}

type LostSale struct {
	Region      string `json:"region"`
	LostUnits   int    `json:"lostUnits"`
	LostRevenue int    `json:"lostRevenue"`
}

// RegionalDemand produces one forecast per signal, in signal order.
// Confidence is drawn from src and does not influence any other field.
func RegionalDemand(idx *Index, signals []models.DemandSignal, src Source) []DemandForecast {
	out := make([]DemandForecast, 0, len(signals))
	for _, s := range signals {
		current := idx.RegionOrders(s.Region)
		out = append(out, DemandForecast{
			Region:          s.Region,
			CurrentDemand:   current,
			PredictedDemand: round(float64(current)*orderWeight + float64(s.Searches)*searchWeight),
			Confidence:      src.Float(confidenceFloor, confidenceCeiling),
		})
	}
	return out
}

// LostSales estimates unmet demand per signal region, floored at zero.
func LostSales(idx *Index, signals []models.DemandSignal) []LostSale {
	out := make([]LostSale, 0, len(signals))
	for _, s := range signals {
		potential := float64(s.Searches) * searchConversion
		lost := max(0, round(potential-float64(idx.RegionUnits(s.Region))))
		out = append(out, LostSale{
			Region:      s.Region,
			LostUnits:   lost,
			LostRevenue: lost * avgUnitPrice,
		})
	}
	return out
}
