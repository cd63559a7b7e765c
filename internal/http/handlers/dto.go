package handlers

import (
	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	DealerID  string `json:"dealerId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	BuyerName string `json:"buyerName"`
}

// InventoryUpdateRequest leaves a stock level unchanged when its field is absent.
type InventoryUpdateRequest struct {
	ProductID      string `json:"productId"`
	WarehouseStock *int   `json:"warehouseStock,omitempty"`
	DealerStock    *int   `json:"dealerStock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementsSearchResult struct {
	Data []models.Movement `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type CreateListingRequest struct {
	SellerID  string          `json:"sellerId"`
	PaintName string          `json:"paintName"`
	Quantity  decimal.Decimal `json:"quantity"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location"`
}

type BuyListingRequest struct {
	ID       string          `json:"id"`
	Quantity decimal.Decimal `json:"quantity"`
}

type LoginRequest struct {
	Role     string `json:"role"`
	Password string `json:"password,omitempty"`
}

type LoginResult struct {
	Token string         `json:"token"`
	User  models.Session `json:"user"`
}

type ImportDemandResult struct {
	ImportedCount int               `json:"imported"`
	Errors        []ValidationError `json:"errors"`
}
