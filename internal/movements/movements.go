// Package movements keeps an append-only log of stock changes made through
// order placement and inventory updates.
package movements

import (
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type Log interface {
	Record(m models.Movement) error
	// List returns the matching page, oldest first, and the total match count.
	List(f Filter) ([]models.Movement, int, error)
}

type Filter struct {
	ProductID string
	Since     *time.Time
	Until     *time.Time
	Offset    *int
	Limit     *int
}

func (f Filter) match(m models.Movement) bool {
	if f.ProductID != "" && m.ProductID != f.ProductID {
		return false
	}
	if f.Since != nil && m.Timestamp.Before(*f.Since) {
		return false
	}
	if f.Until != nil && m.Timestamp.After(*f.Until) {
		return false
	}
	return true
}

func (f Filter) apply(all []models.Movement) ([]models.Movement, int) {
	filtered := []models.Movement{}
	for _, m := range all {
		if f.match(m) {
			filtered = append(filtered, m)
		}
	}

	start := 0
	if f.Offset != nil {
		start = clamp(*f.Offset, 0, len(filtered))
	}
	end := len(filtered)
	if f.Limit != nil && *f.Limit > 0 {
		end = clamp(start+*f.Limit, start, len(filtered))
	}
	return filtered[start:end], len(filtered)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
