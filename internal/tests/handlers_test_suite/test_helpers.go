package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	"github.com/rogerio-castellano/paintchain/internal/auth"
	"github.com/rogerio-castellano/paintchain/internal/clock"
	api "github.com/rogerio-castellano/paintchain/internal/http"
	handler "github.com/rogerio-castellano/paintchain/internal/http/handlers"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/movements"
	"github.com/rogerio-castellano/paintchain/internal/repo"
	"github.com/shopspring/decimal"
)

const adminPassword = "secret"

var (
	now = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	issuer      *auth.Issuer
	paintRepo   *repo.JSONPaintRepository
	orderRepo   *repo.JSONOrderRepository
	demandRepo  *repo.JSONDemandRepository
	resaleRepo  *repo.JSONResaleRepository
	movementLog = movements.NewInMemoryLog()
)

func init() {
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error hashing admin password: %v", err))
	}
	issuer = auth.NewIssuer("test-secret", time.Hour, hash)
	handler.SetIssuer(issuer)
	handler.SetEngine(analytics.NewEngine(
		analytics.WithClock(clock.NewFixed(now)),
		analytics.WithSource(analytics.FixedSource{}),
	))
}

// Fixture, as of 2025-06-15:
//   - p2 has not sold for 106 days; p3 has an unparsable lastSoldDate
//   - o3 references a dealer that does not exist
//   - North: 2 orders / 30 units, South: none
func seedPaints() []models.Paint {
	return []models.Paint{
		{ID: "p1", Name: "Royale Luxury Emulsion", Category: "Interior", WarehouseStock: 400, DealerStock: 120, Price: 500, Region: "North", LastSoldDate: "2025-06-01"},
		{ID: "p2", Name: "Apex Weatherproof", Category: "Exterior", WarehouseStock: 100, DealerStock: 30, Price: 600, Region: "South", LastSoldDate: "2025-03-01"},
		{ID: "p3", Name: "Tractor Distemper", Category: "Interior", WarehouseStock: 0, DealerStock: 10, Price: 200, Region: "East", LastSoldDate: "not-a-date"},
	}
}

func seedDealers() []models.Dealer {
	return []models.Dealer{
		{ID: "d1", Name: "Sharma Paints", Region: "North", Inventory: 200},
		{ID: "d2", Name: "Lakshmi Colour House", Region: "South", Inventory: 0},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{ID: "o1", DealerID: "d1", ProductID: "p1", Quantity: 20, BuyerName: "Metro Builders", Status: models.OrderDelivered, DeliveryDate: "2025-05-30"},
		{ID: "o2", DealerID: "d1", ProductID: "p2", Quantity: 10, BuyerName: "R. Gupta", Status: models.OrderShipped, DeliveryDate: "2025-06-10"},
		{ID: "o3", DealerID: "d9", ProductID: "p1", Quantity: 5, BuyerName: "Ghost", Status: models.OrderPending, DeliveryDate: "2025-06-20"},
	}
}

func seedSignals() []models.DemandSignal {
	return []models.DemandSignal{
		{Region: "North", Searches: 1000},
		{Region: "South", Searches: 800},
	}
}

func seedListings() []models.ResaleListing {
	return []models.ResaleListing{
		{ID: "rs1", SellerID: "u_dealer", PaintName: "Royale Luxury Emulsion", Quantity: decimal.NewFromInt(12), Price: decimal.NewFromInt(3900), Status: models.ListingActive, CreatedAt: "2025-05-20T10:00:00Z"},
		{ID: "rs2", SellerID: "u_buyer", PaintName: "Royale Luxury Emulsion", Quantity: decimal.RequireFromString("4.5"), Price: decimal.NewFromInt(1100), Status: models.ListingActive, CreatedAt: "2025-06-10T08:30:00Z"},
		{ID: "rs3", SellerID: "u_dealer", PaintName: "Wood Finish Satin", Quantity: decimal.Zero, Price: decimal.NewFromInt(2200), Status: models.ListingSold, CreatedAt: "2025-04-02T12:00:00Z"},
	}
}

// newTestRouter reseeds every repository and returns a router over them.
func newTestRouter(strict bool) http.Handler {
	paintRepo = repo.NewInMemoryPaintRepository(seedPaints()...)
	orderRepo = repo.NewInMemoryOrderRepository(seedOrders()...)
	demandRepo = repo.NewInMemoryDemandRepository(seedSignals()...)
	resaleRepo = repo.NewInMemoryResaleRepository(seedListings()...)
	movementLog.Clear()

	handler.SetStore(repo.Store{
		Paints:  paintRepo,
		Dealers: repo.NewInMemoryDealerRepository(seedDealers()...),
		Orders:  orderRepo,
		Demand:  demandRepo,
		Resale:  resaleRepo,
	})
	handler.SetMovementLog(movementLog)
	handler.SetStrictDates(strict)

	return api.NewRouter(api.WithIssuer(issuer))
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func post(r http.Handler, path string, payload any, headers ...string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
