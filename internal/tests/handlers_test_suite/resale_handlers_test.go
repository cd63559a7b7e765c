package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
	handler "github.com/rogerio-castellano/paintchain/internal/http/handlers"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

func TestGetListingsHandler(t *testing.T) {
	r := newTestRouter(false)

	w := get(r, "/api/resale/list")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	got, err := decode[[]analytics.ListingInsight](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(got))
	}

	tests := []struct {
		id         string
		suggestion bool
		tag        bool
	}{
		{"rs1", true, true},   // 26 days old
		{"rs2", false, true},  // 5 days old
		{"rs3", false, false}, // sold
	}
	for i, tt := range tests {
		if got[i].ID != tt.id {
			t.Fatalf("expected %s at %d, got %s", tt.id, i, got[i].ID)
		}
		if (got[i].Suggestion != nil) != tt.suggestion {
			t.Errorf("%s: expected suggestion %v, got %v", tt.id, tt.suggestion, got[i].Suggestion)
		}
		if (got[i].Tag != nil) != tt.tag {
			t.Errorf("%s: expected tag %v, got %v", tt.id, tt.tag, got[i].Tag)
		}
	}
	if got[0].Suggestion != nil && *got[0].Suggestion != "Reduce price to speed up sale" {
		t.Errorf("unexpected suggestion %q", *got[0].Suggestion)
	}
}

func TestGetMyListingsHandler(t *testing.T) {
	r := newTestRouter(false)

	t.Run("By query", func(t *testing.T) {
		w := get(r, "/api/resale/my-listings?sellerId=u_dealer")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		got, _ := decode[[]models.ResaleListing](w)
		if len(got) != 2 {
			t.Errorf("expected 2 listings, got %d", len(got))
		}
	})

	t.Run("From the session", func(t *testing.T) {
		token := login(t, r, models.RoleBuyer, "")
		req := authedGet("/api/resale/my-listings", token)
		w := serve(r, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		got, _ := decode[[]models.ResaleListing](w)
		if len(got) != 1 || got[0].ID != "rs2" {
			t.Errorf("expected rs2 only, got %+v", got)
		}
	})

	t.Run("No seller", func(t *testing.T) {
		if w := get(r, "/api/resale/my-listings"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCreateListingHandler(t *testing.T) {
	r := newTestRouter(false)

	w := post(r, "/api/resale/create", handler.CreateListingRequest{
		SellerID:  "u_dealer",
		PaintName: "Enamel Gloss White",
		Quantity:  decimal.RequireFromString("2.5"),
		Condition: "Opened",
		Price:     decimal.NewFromInt(650),
		Location:  "Pune",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	l, err := decode[models.ResaleListing](w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if l.ID != "rs4" || l.Status != models.ListingActive || l.CreatedAt != "2025-06-15T00:00:00Z" {
		t.Errorf("unexpected listing %+v", l)
	}

	w = post(r, "/api/resale/create", handler.CreateListingRequest{SellerID: "u_dealer"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	errs, _ := decode[[]handler.ValidationError](w)
	if len(errs) != 3 {
		t.Errorf("expected 3 validation errors, got %v", errs)
	}
}

func TestBuyListingHandler(t *testing.T) {
	r := newTestRouter(false)

	tests := []struct {
		name       string
		payload    handler.BuyListingRequest
		expectCode int
		status     string
		remaining  string
	}{
		{"Partial", handler.BuyListingRequest{ID: "rs2", Quantity: decimal.RequireFromString("1.5")}, http.StatusOK, models.ListingActive, "3"},
		{"Too much", handler.BuyListingRequest{ID: "rs2", Quantity: decimal.NewFromInt(10)}, http.StatusBadRequest, "", ""},
		{"Rest", handler.BuyListingRequest{ID: "rs2", Quantity: decimal.NewFromInt(3)}, http.StatusOK, models.ListingSold, "0"},
		{"Unknown", handler.BuyListingRequest{ID: "rs99", Quantity: decimal.NewFromInt(1)}, http.StatusNotFound, "", ""},
		{"Zero quantity", handler.BuyListingRequest{ID: "rs1"}, http.StatusBadRequest, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/api/resale/buy", tt.payload)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}
			if tt.expectCode != http.StatusOK {
				return
			}
			l, err := decode[models.ResaleListing](w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if l.Status != tt.status || l.Quantity.String() != tt.remaining {
				t.Errorf("expected %s with %s left, got %s with %s", tt.status, tt.remaining, l.Status, l.Quantity)
			}
		})
	}
}
