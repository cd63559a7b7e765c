package models

import "github.com/shopspring/decimal"

const (
	ListingActive = "Active"
	ListingSold   = "Sold"
)

func init() {
	// Listings round-trip through the JSON store; keep numbers as numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type ResaleListing struct {
	ID        string          `json:"id"`
	SellerID  string          `json:"sellerId"`
	PaintName string          `json:"paintName"`
	Quantity  decimal.Decimal `json:"quantity"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	Location  string          `json:"location"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"createdAt"`
}
