package repo

import (
	"fmt"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type OrderRepository interface {
	GetAll() ([]models.Order, error)
	// Create assigns the next sequential id ("o<N>") and stores the order.
	Create(o models.Order) (models.Order, error)
}

// JSONOrderRepository stores orders in orders.json, or in memory.
type JSONOrderRepository struct {
	c *collection[models.Order]
}

func NewJSONOrderRepository(dir string) *JSONOrderRepository {
	return &JSONOrderRepository{c: newFileCollection[models.Order](dir, "orders")}
}

func NewInMemoryOrderRepository(seed ...models.Order) *JSONOrderRepository {
	return &JSONOrderRepository{c: newMemoryCollection(seed)}
}

func (r *JSONOrderRepository) GetAll() ([]models.Order, error) {
	return r.c.all()
}

func (r *JSONOrderRepository) Create(o models.Order) (models.Order, error) {
	err := r.c.mutate(func(orders []models.Order) ([]models.Order, error) {
		o.ID = fmt.Sprintf("o%d", len(orders)+1)
		for _, existing := range orders {
			if existing.ID == o.ID {
				return nil, ErrDuplicatedValueUnique
			}
		}
		return append(orders, o), nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}
