package repo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

func TestJSONPaintRepository_FileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	seed := `[{"id":"p1","name":"Royal Silk Gloss","warehouseStock":500,"dealerStock":120,"price":450,"region":"North","lastSoldDate":"2025-10-01"}]`
	if err := os.WriteFile(filepath.Join(dir, "paints.json"), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewJSONPaintRepository(dir)
	warehouse := 450
	if _, _, err := r.SetStock("p1", &warehouse, nil); err != nil {
		t.Fatalf("SetStock failed: %v", err)
	}

	// a fresh repository must see the persisted change
	again, err := NewJSONPaintRepository(dir).GetByID("p1")
	if err != nil {
		t.Fatalf("GetByID after reopen failed: %v", err)
	}
	if again.WarehouseStock != 450 {
		t.Errorf("expected warehouse stock 450, got %d", again.WarehouseStock)
	}
	if again.LastSoldDate != "2025-10-01" {
		t.Errorf("expected lastSoldDate preserved, got %q", again.LastSoldDate)
	}
}

func TestJSONRepository_MissingFileIsEmpty(t *testing.T) {
	dealers, err := NewJSONDealerRepository(t.TempDir()).GetAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dealers) != 0 {
		t.Errorf("expected no dealers, got %d", len(dealers))
	}
}

func TestJSONRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewJSONOrderRepository(dir).GetAll()
	if err == nil || !strings.Contains(err.Error(), "orders.json") {
		t.Errorf("expected decode error naming the file, got %v", err)
	}
}

func TestPaintRepository_UnknownPaint(t *testing.T) {
	r := NewInMemoryPaintRepository()
	stock := 1
	if _, _, err := r.SetStock("nope", &stock, nil); !errors.Is(err, ErrPaintNotFound) {
		t.Errorf("expected ErrPaintNotFound, got %v", err)
	}
	if _, err := r.GetByID("nope"); !errors.Is(err, ErrPaintNotFound) {
		t.Errorf("expected ErrPaintNotFound, got %v", err)
	}
}

func TestPaintRepository_AdjustDealerStockFloorsAtZero(t *testing.T) {
	r := NewInMemoryPaintRepository(models.Paint{ID: "p1", DealerStock: 15})

	p, applied, err := r.AdjustDealerStock("p1", -10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DealerStock != 5 || applied != -10 {
		t.Errorf("expected stock 5 applied -10, got %d %d", p.DealerStock, applied)
	}

	p, applied, err = r.AdjustDealerStock("p1", -20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DealerStock != 0 || applied != -5 {
		t.Errorf("expected stock 0 applied -5, got %d %d", p.DealerStock, applied)
	}

	if _, _, err := r.AdjustDealerStock("p2", -1); !errors.Is(err, ErrPaintNotFound) {
		t.Errorf("expected ErrPaintNotFound, got %v", err)
	}
}

func TestPaintRepository_SetStock(t *testing.T) {
	r := NewInMemoryPaintRepository(models.Paint{ID: "p1", WarehouseStock: 400, DealerStock: 120})

	warehouse := 350
	before, after, err := r.SetStock("p1", &warehouse, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if before.WarehouseStock != 400 || before.DealerStock != 120 {
		t.Errorf("expected before 400/120, got %d/%d", before.WarehouseStock, before.DealerStock)
	}
	if after.WarehouseStock != 350 || after.DealerStock != 120 {
		t.Errorf("expected after 350/120, got %d/%d", after.WarehouseStock, after.DealerStock)
	}
}

// Dealer stock taken by orders while warehouse stock is being set must not
// be written back.
func TestPaintRepository_SetStockKeepsConcurrentAdjustments(t *testing.T) {
	r := NewInMemoryPaintRepository(models.Paint{ID: "p1", WarehouseStock: 400, DealerStock: 120})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.AdjustDealerStock("p1", -1)
		}()
		go func() {
			defer wg.Done()
			warehouse := 1000 + i
			r.SetStock("p1", &warehouse, nil)
		}()
	}
	wg.Wait()

	p, _ := r.GetByID("p1")
	if p.DealerStock != 70 {
		t.Errorf("expected dealer stock 70, got %d", p.DealerStock)
	}
}

func TestDealerRepository_Add(t *testing.T) {
	dir := t.TempDir()
	if err := NewJSONDealerRepository(dir).Add(models.Dealer{ID: "d1", Region: "North"}, models.Dealer{ID: "d2", Region: "South"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	dealers, err := NewJSONDealerRepository(dir).GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(dealers) != 2 || dealers[1].ID != "d2" {
		t.Errorf("expected d1, d2 in order, got %+v", dealers)
	}
}

func TestOrderRepository_SequentialIDs(t *testing.T) {
	r := NewInMemoryOrderRepository(models.Order{ID: "o1"}, models.Order{ID: "o2"})

	o, err := r.Create(models.Order{DealerID: "d1", ProductID: "p1", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != "o3" {
		t.Errorf("expected id o3, got %s", o.ID)
	}

	all, _ := r.GetAll()
	if len(all) != 3 {
		t.Errorf("expected 3 orders, got %d", len(all))
	}
}

func TestOrderRepository_IDCollision(t *testing.T) {
	r := NewInMemoryOrderRepository(models.Order{ID: "o2"})
	if _, err := r.Create(models.Order{}); !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Errorf("expected ErrDuplicatedValueUnique, got %v", err)
	}
}

func TestResaleRepository_Buy(t *testing.T) {
	r := NewInMemoryResaleRepository()
	l, err := r.Create(models.ResaleListing{
		SellerID:  "u_dealer",
		PaintName: "WeatherShield Max",
		Quantity:  decimal.RequireFromString("2.5"),
		Price:     decimal.NewFromInt(300),
		Status:    models.ListingActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID != "rs1" {
		t.Errorf("expected id rs1, got %s", l.ID)
	}

	if _, err := r.Buy("rs1", decimal.NewFromInt(3)); !errors.Is(err, ErrInsufficientQuantity) {
		t.Errorf("expected ErrInsufficientQuantity, got %v", err)
	}
	if _, err := r.Buy("rs9", decimal.NewFromInt(1)); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("expected ErrListingNotFound, got %v", err)
	}

	l, err = r.Buy("rs1", decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Quantity.Equal(decimal.RequireFromString("1.5")) || l.Status != models.ListingActive {
		t.Errorf("expected 1.5 active, got %s %s", l.Quantity, l.Status)
	}

	l, err = r.Buy("rs1", decimal.RequireFromString("1.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Quantity.IsZero() || l.Status != models.ListingSold {
		t.Errorf("expected sold out, got %s %s", l.Quantity, l.Status)
	}

	mine, _ := r.GetBySeller("u_dealer")
	if len(mine) != 1 {
		t.Errorf("expected 1 listing for seller, got %d", len(mine))
	}
}

func TestStore_Snapshot(t *testing.T) {
	s := Store{
		Paints:  NewInMemoryPaintRepository(models.Paint{ID: "p1"}),
		Dealers: NewInMemoryDealerRepository(models.Dealer{ID: "d1"}, models.Dealer{ID: "d2"}),
		Orders:  NewInMemoryOrderRepository(),
		Demand:  NewInMemoryDemandRepository(models.DemandSignal{Region: "North", Searches: 10}),
		Resale:  NewInMemoryResaleRepository(),
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Paints) != 1 || len(snap.Dealers) != 2 || len(snap.Orders) != 0 || len(snap.Signals) != 1 {
		t.Errorf("unexpected snapshot sizes: %+v", snap)
	}
}

func TestDemandRepository_Upsert(t *testing.T) {
	r := NewInMemoryDemandRepository(models.DemandSignal{Region: "North", Searches: 100})

	err := r.Upsert(models.DemandSignal{Region: "North", Searches: 250}, models.DemandSignal{Region: "West", Searches: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := r.GetAll()
	if len(got) != 2 || got[0].Searches != 250 || got[1].Region != "West" {
		t.Errorf("unexpected signals %+v", got)
	}
}

func TestResaleRepository_IDCollision(t *testing.T) {
	r := NewInMemoryResaleRepository(
		models.ResaleListing{ID: "rs1", Quantity: decimal.NewFromInt(2), Status: models.ListingActive},
		models.ResaleListing{ID: "rs3", Quantity: decimal.NewFromInt(1), Status: models.ListingActive},
	)

	_, err := r.Create(models.ResaleListing{Quantity: decimal.NewFromInt(5), Status: models.ListingActive})
	if !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Fatalf("expected ErrDuplicatedValueUnique, got %v", err)
	}

	all, _ := r.GetAll()
	if len(all) != 2 {
		t.Errorf("expected the store unchanged, got %d listings", len(all))
	}
	if l, err := r.Buy("rs3", decimal.NewFromInt(1)); err != nil || l.Status != models.ListingSold {
		t.Errorf("expected rs3 to still be the original listing, got %+v, %v", l, err)
	}
}
