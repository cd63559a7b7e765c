package repo

import "github.com/rogerio-castellano/paintchain/internal/models"

type DemandRepository interface {
	GetAll() ([]models.DemandSignal, error)
	// Upsert replaces the search count of known regions and appends new ones.
	Upsert(signals ...models.DemandSignal) error
}

// JSONDemandRepository stores demand signals in demandSignals.json, or in memory.
type JSONDemandRepository struct {
	c *collection[models.DemandSignal]
}

func NewJSONDemandRepository(dir string) *JSONDemandRepository {
	return &JSONDemandRepository{c: newFileCollection[models.DemandSignal](dir, "demandSignals")}
}

func NewInMemoryDemandRepository(seed ...models.DemandSignal) *JSONDemandRepository {
	return &JSONDemandRepository{c: newMemoryCollection(seed)}
}

func (r *JSONDemandRepository) GetAll() ([]models.DemandSignal, error) {
	return r.c.all()
}

func (r *JSONDemandRepository) Upsert(signals ...models.DemandSignal) error {
	return r.c.mutate(func(items []models.DemandSignal) ([]models.DemandSignal, error) {
		for _, s := range signals {
			found := false
			for i := range items {
				if items[i].Region == s.Region {
					items[i].Searches = s.Searches
					found = true
					break
				}
			}
			if !found {
				items = append(items, s)
			}
		}
		return items, nil
	})
}
