package handlers_integrated_test_suite

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	handler "github.com/rogerio-castellano/paintchain/internal/http/handlers"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/repo"
)

func TestCreateOrderHandler(t *testing.T) {
	clearAllTables()
	t.Cleanup(clearAllTables)
	if err := seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	r := newRouter()

	t.Run("Sequential ids and stock decrement", func(t *testing.T) {
		for i, want := range []string{"o1", "o2"} {
			w := post(r, "/api/orders/create", handler.CreateOrderRequest{DealerID: "d1", ProductID: "p1", Quantity: 10, BuyerName: "Metro"})
			if w.Code != http.StatusCreated {
				t.Fatalf("order %d: expected 201 Created, got %d", i, w.Code)
			}
			var o models.Order
			json.NewDecoder(w.Body).Decode(&o)
			if o.ID != want {
				t.Errorf("expected id %s, got %s", want, o.ID)
			}
		}

		p, err := paintRepo.GetByID("p1")
		if err != nil {
			t.Fatalf("could not read paint: %v", err)
		}
		if p.DealerStock != 100 {
			t.Errorf("expected dealer stock 100, got %d", p.DealerStock)
		}
	})

	t.Run("Dealer stock floors at zero", func(t *testing.T) {
		w := post(r, "/api/orders/create", handler.CreateOrderRequest{DealerID: "d2", ProductID: "p2", Quantity: 500})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
		p, _ := paintRepo.GetByID("p2")
		if p.DealerStock != 0 {
			t.Errorf("expected dealer stock 0, got %d", p.DealerStock)
		}
	})

	t.Run("Concurrent orders get distinct ids", func(t *testing.T) {
		var wg sync.WaitGroup
		ids := make(chan string, 5)
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := post(r, "/api/orders/create", handler.CreateOrderRequest{DealerID: "d1", ProductID: "p1", Quantity: 1})
				var o models.Order
				json.NewDecoder(w.Body).Decode(&o)
				ids <- o.ID
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[string]bool{}
		for id := range ids {
			if id == "" || seen[id] {
				t.Errorf("duplicate or empty id %q", id)
			}
			seen[id] = true
		}
	})
}

func TestDashboardHandler_Postgres(t *testing.T) {
	clearAllTables()
	t.Cleanup(clearAllTables)
	if err := seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	r := newRouter()

	w := get(r, "/api/analytics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var d struct {
		TotalInventory int `json:"totalInventory"`
		DeadStockCount int `json:"deadStockCount"`
		LowStockPaints int `json:"lowStockPaints"`
	}
	json.NewDecoder(w.Body).Decode(&d)
	if d.TotalInventory != 650 || d.DeadStockCount != 1 || d.LowStockPaints != 1 {
		t.Errorf("unexpected dashboard %+v", d)
	}
}

func TestPaintSetStock_Postgres(t *testing.T) {
	clearAllTables()
	t.Cleanup(clearAllTables)
	if err := seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			paintRepo.AdjustDealerStock("p1", -1)
		}()
		go func() {
			defer wg.Done()
			warehouse := 500 + i
			paintRepo.SetStock("p1", &warehouse, nil)
		}()
	}
	wg.Wait()

	p, err := paintRepo.GetByID("p1")
	if err != nil {
		t.Fatalf("could not read paint: %v", err)
	}
	if p.DealerStock != 100 {
		t.Errorf("expected dealer stock 100, got %d", p.DealerStock)
	}

	dealer := 90
	before, after, err := paintRepo.SetStock("p1", nil, &dealer)
	if err != nil {
		t.Fatalf("SetStock failed: %v", err)
	}
	if before.DealerStock != 100 || after.DealerStock != 90 || after.WarehouseStock != before.WarehouseStock {
		t.Errorf("unexpected before/after: %+v / %+v", before, after)
	}

	if _, _, err := paintRepo.SetStock("p404", &dealer, nil); !errors.Is(err, repo.ErrPaintNotFound) {
		t.Errorf("expected ErrPaintNotFound, got %v", err)
	}
}
