package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/clock"
	"github.com/rogerio-castellano/paintchain/internal/db"
	api "github.com/rogerio-castellano/paintchain/internal/http"
	handler "github.com/rogerio-castellano/paintchain/internal/http/handlers"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/movements"
	"github.com/rogerio-castellano/paintchain/internal/repo"
)

var (
	now = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	database   *sql.DB
	paintRepo  *repo.PostgresPaintRepository
	dealerRepo *repo.PostgresDealerRepository
	demandRepo *repo.PostgresDemandRepository
)

// setupTestRepos connects to DATABASE_URL, applies the schema and wires the
// Postgres store into the handlers.
func setupTestRepos() error {
	var err error
	database, err = db.Connect("")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Migrate(ctx, database); err != nil {
		return err
	}

	store := repo.NewPostgresStore(database)
	paintRepo = store.Paints.(*repo.PostgresPaintRepository)
	dealerRepo = store.Dealers.(*repo.PostgresDealerRepository)
	demandRepo = store.Demand.(*repo.PostgresDemandRepository)

	handler.SetStore(store)
	handler.SetMovementLog(movements.NewInMemoryLog())
	handler.SetIssuer(auth.NewIssuer("test-secret", time.Hour, ""))
	handler.SetEngine(analytics.NewEngine(
		analytics.WithClock(clock.NewFixed(now)),
		analytics.WithSource(analytics.FixedSource{}),
	))
	return nil
}

func clearAllTables() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "TRUNCATE TABLE paints, dealers, orders, demand_signals, resale_listings RESTART IDENTITY")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate tables: %w", err))
	}
}

func seed() error {
	paints := []models.Paint{
		{ID: "p1", Name: "Royale Luxury Emulsion", WarehouseStock: 400, DealerStock: 120, Price: 500, Region: "North", LastSoldDate: "2025-06-01"},
		{ID: "p2", Name: "Apex Weatherproof", WarehouseStock: 100, DealerStock: 30, Price: 600, Region: "South", LastSoldDate: "2025-03-01"},
	}
	for _, p := range paints {
		if err := paintRepo.Insert(p); err != nil {
			return err
		}
	}
	if err := dealerRepo.Add(
		models.Dealer{ID: "d1", Name: "Sharma Paints", Region: "North", Inventory: 200},
		models.Dealer{ID: "d2", Name: "Lakshmi Colour House", Region: "South", Inventory: 0},
	); err != nil {
		return err
	}
	return demandRepo.Upsert(
		models.DemandSignal{Region: "North", Searches: 1000},
		models.DemandSignal{Region: "South", Searches: 800},
	)
}

func newRouter() http.Handler {
	return api.NewRouter()
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func post(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
