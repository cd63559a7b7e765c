package models

// Paint represents a paint SKU tracked across the warehouse and dealer network.
type Paint struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	WarehouseStock int     `json:"warehouseStock"`
	DealerStock    int     `json:"dealerStock"`
	Price          float64 `json:"price"`
	Region         string  `json:"region"`
	// LastSoldDate is kept as received so malformed values can be reported
	// per record instead of failing the whole collection decode.
	LastSoldDate string `json:"lastSoldDate"`
}
