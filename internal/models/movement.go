package models

import "time"

// Movement records a stock change applied to a paint.
type Movement struct {
	ProductID string    `json:"productId"`
	Field     string    `json:"field"` // warehouseStock or dealerStock
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
