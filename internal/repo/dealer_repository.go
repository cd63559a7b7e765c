package repo

import "github.com/rogerio-castellano/paintchain/internal/models"

type DealerRepository interface {
	GetAll() ([]models.Dealer, error)
}

// JSONDealerRepository stores dealers in dealers.json, or in memory.
type JSONDealerRepository struct {
	c *collection[models.Dealer]
}

func NewJSONDealerRepository(dir string) *JSONDealerRepository {
	return &JSONDealerRepository{c: newFileCollection[models.Dealer](dir, "dealers")}
}

func NewInMemoryDealerRepository(seed ...models.Dealer) *JSONDealerRepository {
	return &JSONDealerRepository{c: newMemoryCollection(seed)}
}

func (r *JSONDealerRepository) GetAll() ([]models.Dealer, error) {
	return r.c.all()
}

// Add appends dealers; used for seeding.
func (r *JSONDealerRepository) Add(dealers ...models.Dealer) error {
	return r.c.mutate(func(items []models.Dealer) ([]models.Dealer, error) {
		return append(items, dealers...), nil
	})
}
