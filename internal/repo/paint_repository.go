package repo

import "github.com/rogerio-castellano/paintchain/internal/models"

// PaintRepository defines the paint catalogue operations.
type PaintRepository interface {
	GetAll() ([]models.Paint, error)
	GetByID(id string) (models.Paint, error)
	// SetStock replaces the given stock levels in one step, leaving nil ones
	// untouched, and returns the paint before and after the change.
	SetStock(id string, warehouse, dealer *int) (before, after models.Paint, err error)
	// AdjustDealerStock adds delta to the dealer stock, flooring it at zero,
	// and returns the updated paint with the delta actually applied.
	AdjustDealerStock(id string, delta int) (models.Paint, int, error)
}
