package analytics

import (
	"errors"
	"math"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

// DeadStockDays is the staleness threshold; a paint is dead stock when its
// last sale is strictly more than this many (ceiled) days old.
const DeadStockDays = 60

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyDate
	}
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// DaysSince returns ceil((now - t) / 24h).
func DaysSince(t, now time.Time) int {
	return int(math.Ceil(float64(now.Sub(t)) / float64(24*time.Hour)))
}

// DeadStock returns the paints whose last sale is older than DeadStockDays
// relative to now. Paints with an unparsable date are left out of the result
// and reported as *InvalidDateError values joined into the returned error;
// the returned slice is still valid when err != nil.
func DeadStock(paints []models.Paint, now time.Time) ([]models.Paint, error) {
	dead := []models.Paint{}
	var errs []error
	for _, p := range paints {
		sold, err := parseDate(p.LastSoldDate)
		if err != nil {
			errs = append(errs, &InvalidDateError{PaintID: p.ID, Value: p.LastSoldDate, Err: err})
			continue
		}
		if DaysSince(sold, now) > DeadStockDays {
			dead = append(dead, p)
		}
	}
	return dead, errors.Join(errs...)
}
