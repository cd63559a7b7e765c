package analytics

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

const (
	LowStockThreshold   = 50
	LostSalesAlertUnits = 50
)

type Dashboard struct {
	TotalInventory  int              `json:"totalInventory"`
	LowStockPaints  int              `json:"lowStockPaints"`
	DeadStockCount  int              `json:"deadStockCount"`
	AvgHealthScore  int              `json:"avgHealthScore"`
	TotalStockValue decimal.Decimal  `json:"totalStockValue"`
	InvalidRecords  int              `json:"invalidRecords"`
	UnmatchedOrders int              `json:"unmatchedOrders"`
	RegionalDemand  []DemandForecast `json:"regionalDemand"`
}

// Summarize composes the dashboard view from the paint collection and a
// computed result.
func Summarize(paints []models.Paint, r *Result) Dashboard {
	d := Dashboard{
		DeadStockCount:  len(r.DeadStock),
		InvalidRecords:  len(r.InvalidRecords),
		UnmatchedOrders: r.UnmatchedOrders,
		RegionalDemand:  r.RegionalDemand,
		TotalStockValue: decimal.Zero,
	}
	for _, p := range paints {
		stock := p.WarehouseStock + p.DealerStock
		d.TotalInventory += stock
		if p.DealerStock < LowStockThreshold {
			d.LowStockPaints++
		}
		d.TotalStockValue = d.TotalStockValue.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(stock))))
	}
	if n := len(r.DealerHealth); n > 0 {
		sum := 0
		for _, h := range r.DealerHealth {
			sum += h.HealthScore
		}
		d.AvgHealthScore = round(float64(sum) / float64(n))
	}
	return d
}

const (
	AlertWarning  = "Warning"
	AlertCritical = "Critical"
)

type Alert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Alerts lists dead-stock warnings followed by lost-sales criticals for
// regions with more than LostSalesAlertUnits unmet units.
func Alerts(r *Result, now time.Time) []Alert {
	date := now.UTC().Format(time.RFC3339)
	alerts := []Alert{}
	for _, p := range r.DeadStock {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Title:   "Dead Stock Alert",
			Message: fmt.Sprintf("%s has not sold in %d days.", p.Name, DeadStockDays),
			Date:    date,
		})
	}
	for _, s := range r.LostSales {
		if s.LostUnits <= LostSalesAlertUnits {
			continue
		}
		alerts = append(alerts, Alert{
			Type:    AlertCritical,
			Title:   "Lost Sales Alert",
			Message: fmt.Sprintf("High potential demand in %s region. Unmet units: %d", s.Region, s.LostUnits),
			Date:    date,
		})
	}
	return alerts
}
