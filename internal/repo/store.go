package repo

import (
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/paintchain/internal/analytics"
)

// Store groups the repositories backing one deployment.
type Store struct {
	Paints  PaintRepository
	Dealers DealerRepository
	Orders  OrderRepository
	Demand  DemandRepository
	Resale  ResaleRepository
}

// NewJSONStore reads and writes the collections as JSON files under dir.
func NewJSONStore(dir string) Store {
	return Store{
		Paints:  NewJSONPaintRepository(dir),
		Dealers: NewJSONDealerRepository(dir),
		Orders:  NewJSONOrderRepository(dir),
		Demand:  NewJSONDemandRepository(dir),
		Resale:  NewJSONResaleRepository(dir),
	}
}

func NewInMemoryStore() Store {
	return Store{
		Paints:  NewInMemoryPaintRepository(),
		Dealers: NewInMemoryDealerRepository(),
		Orders:  NewInMemoryOrderRepository(),
		Demand:  NewInMemoryDemandRepository(),
		Resale:  NewInMemoryResaleRepository(),
	}
}

func NewPostgresStore(db *sql.DB) Store {
	return Store{
		Paints:  NewPostgresPaintRepository(db),
		Dealers: NewPostgresDealerRepository(db),
		Orders:  NewPostgresOrderRepository(db),
		Demand:  NewPostgresDemandRepository(db),
		Resale:  NewPostgresResaleRepository(db),
	}
}

// Snapshot loads the four collections the analytics engine reads.
func (s Store) Snapshot() (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	var err error
	if snap.Paints, err = s.Paints.GetAll(); err != nil {
		return snap, fmt.Errorf("load paints: %w", err)
	}
	if snap.Orders, err = s.Orders.GetAll(); err != nil {
		return snap, fmt.Errorf("load orders: %w", err)
	}
	if snap.Signals, err = s.Demand.GetAll(); err != nil {
		return snap, fmt.Errorf("load demand signals: %w", err)
	}
	if snap.Dealers, err = s.Dealers.GetAll(); err != nil {
		return snap, fmt.Errorf("load dealers: %w", err)
	}
	return snap, nil
}
