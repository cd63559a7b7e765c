package analytics

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	paints := []models.Paint{
		{ID: "p1", WarehouseStock: 500, DealerStock: 120, Price: 450},
		{ID: "p2", WarehouseStock: 800, DealerStock: 40, Price: 600.5},
	}
	r := &Result{
		DeadStock:       []models.Paint{paints[1]},
		DealerHealth:    []DealerHealth{{HealthScore: 80}, {HealthScore: 75}},
		RegionalDemand:  []DemandForecast{{Region: "North"}},
		InvalidRecords:  []*InvalidDateError{{PaintID: "p9"}},
		UnmatchedOrders: 2,
	}

	d := Summarize(paints, r)

	if d.TotalInventory != 1460 {
		t.Errorf("expected total inventory 1460, got %d", d.TotalInventory)
	}
	if d.LowStockPaints != 1 {
		t.Errorf("expected 1 low stock paint, got %d", d.LowStockPaints)
	}
	if d.DeadStockCount != 1 {
		t.Errorf("expected 1 dead stock paint, got %d", d.DeadStockCount)
	}
	if d.AvgHealthScore != 78 {
		t.Errorf("expected avg health 78, got %d", d.AvgHealthScore)
	}
	wantValue := decimal.RequireFromString("783420")
	if !d.TotalStockValue.Equal(wantValue) {
		t.Errorf("expected stock value %s, got %s", wantValue, d.TotalStockValue)
	}
	if d.InvalidRecords != 1 || d.UnmatchedOrders != 2 {
		t.Errorf("expected invalid=1 unmatched=2, got %d %d", d.InvalidRecords, d.UnmatchedOrders)
	}
}

func TestSummarize_NoDealers(t *testing.T) {
	d := Summarize(nil, &Result{})
	if d.AvgHealthScore != 0 {
		t.Errorf("expected 0 avg health without dealers, got %d", d.AvgHealthScore)
	}
}

func TestAlerts(t *testing.T) {
	r := &Result{
		DeadStock: []models.Paint{{Name: "Matte Finish Pro"}},
		LostSales: []LostSale{
			{Region: "West", LostUnits: 250},
			{Region: "South", LostUnits: 50},
		},
	}

	alerts := Alerts(r, refNow)
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Type != AlertWarning || alerts[0].Message != "Matte Finish Pro has not sold in 60 days." {
		t.Errorf("unexpected dead stock alert %+v", alerts[0])
	}
	if alerts[1].Type != AlertCritical || alerts[1].Message != "High potential demand in West region. Unmet units: 250" {
		t.Errorf("unexpected lost sales alert %+v", alerts[1])
	}
	if alerts[0].Date != refNow.Format(time.RFC3339) {
		t.Errorf("expected date %s, got %s", refNow.Format(time.RFC3339), alerts[0].Date)
	}
}

func TestEnrichListings(t *testing.T) {
	listings := []models.ResaleListing{
		{ID: "rs1", PaintName: "Royal Silk Gloss", Status: models.ListingActive, CreatedAt: daysAgo(12)},
		{ID: "rs2", PaintName: "Royal Silk Gloss", Status: models.ListingSold, CreatedAt: daysAgo(30)},
		{ID: "rs3", PaintName: "WeatherShield Max", Status: models.ListingActive, CreatedAt: daysAgo(2)},
		{ID: "rs4", PaintName: "EcoPure", Status: models.ListingActive, CreatedAt: "garbage"},
	}

	got := EnrichListings(listings, refNow)

	if got[0].Suggestion == nil || *got[0].Suggestion != reducePriceHint {
		t.Errorf("expected price hint on rs1, got %v", got[0].Suggestion)
	}
	if got[1].Suggestion != nil {
		t.Error("expected no price hint on sold listing")
	}
	if got[2].Suggestion != nil || got[3].Suggestion != nil {
		t.Error("expected no price hint on fresh or undated listings")
	}
	if got[0].Tag == nil || got[1].Tag == nil {
		t.Error("expected duplicated paint to be tagged")
	}
	if got[2].Tag != nil {
		t.Error("expected unique paint to be untagged")
	}
}
