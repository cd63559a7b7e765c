package repo

import "github.com/rogerio-castellano/paintchain/internal/models"

// JSONPaintRepository stores paints in paints.json, or in memory.
type JSONPaintRepository struct {
	c *collection[models.Paint]
}

func NewJSONPaintRepository(dir string) *JSONPaintRepository {
	return &JSONPaintRepository{c: newFileCollection[models.Paint](dir, "paints")}
}

func NewInMemoryPaintRepository(seed ...models.Paint) *JSONPaintRepository {
	return &JSONPaintRepository{c: newMemoryCollection(seed)}
}

func (r *JSONPaintRepository) GetAll() ([]models.Paint, error) {
	return r.c.all()
}

func (r *JSONPaintRepository) GetByID(id string) (models.Paint, error) {
	paints, err := r.c.all()
	if err != nil {
		return models.Paint{}, err
	}
	for _, p := range paints {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Paint{}, ErrPaintNotFound
}

func (r *JSONPaintRepository) SetStock(id string, warehouse, dealer *int) (models.Paint, models.Paint, error) {
	var before, after models.Paint
	err := r.c.mutate(func(paints []models.Paint) ([]models.Paint, error) {
		for i := range paints {
			if paints[i].ID != id {
				continue
			}
			before = paints[i]
			if warehouse != nil {
				paints[i].WarehouseStock = *warehouse
			}
			if dealer != nil {
				paints[i].DealerStock = *dealer
			}
			after = paints[i]
			return paints, nil
		}
		return nil, ErrPaintNotFound
	})
	return before, after, err
}

func (r *JSONPaintRepository) AdjustDealerStock(id string, delta int) (models.Paint, int, error) {
	var updated models.Paint
	var applied int
	err := r.c.mutate(func(paints []models.Paint) ([]models.Paint, error) {
		for i := range paints {
			if paints[i].ID == id {
				next := max(0, paints[i].DealerStock+delta)
				applied = next - paints[i].DealerStock
				paints[i].DealerStock = next
				updated = paints[i]
				return paints, nil
			}
		}
		return nil, ErrPaintNotFound
	})
	return updated, applied, err
}
