package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/paintchain/internal/http/handlers"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

func TestResaleFlow(t *testing.T) {
	clearAllTables()
	t.Cleanup(clearAllTables)
	r := newRouter()

	w := post(r, "/api/resale/create", handler.CreateListingRequest{
		SellerID:  "u_dealer",
		PaintName: "Apex Weatherproof",
		Quantity:  decimal.RequireFromString("7.5"),
		Price:     decimal.NewFromInt(900),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created models.ResaleListing
	json.NewDecoder(w.Body).Decode(&created)
	if created.ID != "rs1" {
		t.Fatalf("expected id rs1, got %s", created.ID)
	}

	w = post(r, "/api/resale/buy", handler.BuyListingRequest{ID: "rs1", Quantity: decimal.NewFromInt(8)})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for insufficient quantity, got %d", w.Code)
	}

	w = post(r, "/api/resale/buy", handler.BuyListingRequest{ID: "rs1", Quantity: decimal.RequireFromString("7.5")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var bought models.ResaleListing
	json.NewDecoder(w.Body).Decode(&bought)
	if bought.Status != models.ListingSold || !bought.Quantity.IsZero() {
		t.Errorf("expected Sold with nothing left, got %s with %s", bought.Status, bought.Quantity)
	}

	w = post(r, "/api/resale/buy", handler.BuyListingRequest{ID: "rs404", Quantity: decimal.NewFromInt(1)})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
