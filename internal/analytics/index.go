package analytics

import "github.com/rogerio-castellano/paintchain/internal/models"

// Index joins orders to dealers once so every derivation can look up
// regional and per-dealer aggregates in constant time.
type Index struct {
	dealers        map[string]models.Dealer
	regionOrders   map[string]int
	regionUnits    map[string]int
	dealerOrders   map[string]int
	unmatchedCount int
}

func NewIndex(orders []models.Order, dealers []models.Dealer) *Index {
	idx := &Index{
		dealers:      make(map[string]models.Dealer, len(dealers)),
		regionOrders: make(map[string]int),
		regionUnits:  make(map[string]int),
		dealerOrders: make(map[string]int),
	}
	for _, d := range dealers {
		// first occurrence wins, matching a linear find
		if _, ok := idx.dealers[d.ID]; !ok {
			idx.dealers[d.ID] = d
		}
	}
	for _, o := range orders {
		idx.dealerOrders[o.DealerID]++
		d, ok := idx.dealers[o.DealerID]
		if !ok {
			idx.unmatchedCount++
			continue
		}
		idx.regionOrders[d.Region]++
		idx.regionUnits[d.Region] += o.Quantity
	}
	return idx
}

// RegionOrders is the number of orders placed through dealers in region.
func (idx *Index) RegionOrders(region string) int { return idx.regionOrders[region] }

// RegionUnits is the total ordered quantity through dealers in region.
func (idx *Index) RegionUnits(region string) int { return idx.regionUnits[region] }

// DealerOrders counts orders referencing dealerID, whether or not it exists.
func (idx *Index) DealerOrders(dealerID string) int { return idx.dealerOrders[dealerID] }

// Unmatched is the number of orders whose dealer is not in the collection.
// Those orders are excluded from every regional aggregate.
func (idx *Index) Unmatched() int { return idx.unmatchedCount }
