package repo

import (
	"fmt"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

type ResaleRepository interface {
	GetAll() ([]models.ResaleListing, error)
	GetBySeller(sellerID string) ([]models.ResaleListing, error)
	// Create assigns the next sequential id ("rs<N>") and stores the listing.
	Create(l models.ResaleListing) (models.ResaleListing, error)
	// Buy takes qty from a listing, marking it Sold when nothing is left.
	Buy(id string, qty decimal.Decimal) (models.ResaleListing, error)
}

// JSONResaleRepository stores listings in resale.json, or in memory.
type JSONResaleRepository struct {
	c *collection[models.ResaleListing]
}

func NewJSONResaleRepository(dir string) *JSONResaleRepository {
	return &JSONResaleRepository{c: newFileCollection[models.ResaleListing](dir, "resale")}
}

func NewInMemoryResaleRepository(seed ...models.ResaleListing) *JSONResaleRepository {
	return &JSONResaleRepository{c: newMemoryCollection(seed)}
}

func (r *JSONResaleRepository) GetAll() ([]models.ResaleListing, error) {
	return r.c.all()
}

func (r *JSONResaleRepository) GetBySeller(sellerID string) ([]models.ResaleListing, error) {
	all, err := r.c.all()
	if err != nil {
		return nil, err
	}
	mine := []models.ResaleListing{}
	for _, l := range all {
		if l.SellerID == sellerID {
			mine = append(mine, l)
		}
	}
	return mine, nil
}

func (r *JSONResaleRepository) Create(l models.ResaleListing) (models.ResaleListing, error) {
	err := r.c.mutate(func(items []models.ResaleListing) ([]models.ResaleListing, error) {
		l.ID = fmt.Sprintf("rs%d", len(items)+1)
		for _, existing := range items {
			if existing.ID == l.ID {
				return nil, ErrDuplicatedValueUnique
			}
		}
		return append(items, l), nil
	})
	if err != nil {
		return models.ResaleListing{}, err
	}
	return l, nil
}

func (r *JSONResaleRepository) Buy(id string, qty decimal.Decimal) (models.ResaleListing, error) {
	var bought models.ResaleListing
	err := r.c.mutate(func(items []models.ResaleListing) ([]models.ResaleListing, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Quantity.LessThan(qty) {
				return nil, ErrInsufficientQuantity
			}
			items[i].Quantity = items[i].Quantity.Sub(qty)
			if items[i].Quantity.IsZero() {
				items[i].Status = models.ListingSold
			}
			bought = items[i]
			return items, nil
		}
		return nil, ErrListingNotFound
	})
	return bought, err
}
