package analytics

import (
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

const (
	staleListingDays     = 10
	reducePriceHint      = "Reduce price to speed up sale"
	highResaleDemandHint = "High resale demand"
)

type ListingInsight struct {
	models.ResaleListing
	Suggestion *string `json:"suggestion"`
	Tag        *string `json:"tag"`
}

// EnrichListings annotates active listings open for more than ten days with
// a price hint, and tags paints listed more than once. Listings with an
// unparsable createdAt never get the price hint.
func EnrichListings(listings []models.ResaleListing, now time.Time) []ListingInsight {
	byPaint := make(map[string]int, len(listings))
	for _, l := range listings {
		byPaint[l.PaintName]++
	}

	out := make([]ListingInsight, 0, len(listings))
	for _, l := range listings {
		li := ListingInsight{ResaleListing: l}
		if l.Status == models.ListingActive {
			if created, err := parseDate(l.CreatedAt); err == nil &&
				now.Sub(created) > staleListingDays*24*time.Hour {
				s := reducePriceHint
				li.Suggestion = &s
			}
		}
		if byPaint[l.PaintName] > 1 {
			t := highResaleDemandHint
			li.Tag = &t
		}
		out = append(out, li)
	}
	return out
}
