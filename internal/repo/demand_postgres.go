package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type PostgresDemandRepository struct {
	db *sql.DB
}

func NewPostgresDemandRepository(db *sql.DB) *PostgresDemandRepository {
	return &PostgresDemandRepository{db: db}
}

func (r *PostgresDemandRepository) GetAll() ([]models.DemandSignal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT region, searches FROM demand_signals ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signals := []models.DemandSignal{}
	for rows.Next() {
		var s models.DemandSignal
		if err := rows.Scan(&s.Region, &s.Searches); err != nil {
			return nil, err
		}
		signals = append(signals, s)
	}
	return signals, rows.Err()
}

func (r *PostgresDemandRepository) Upsert(signals ...models.DemandSignal) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, s := range signals {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO demand_signals (region, searches) VALUES ($1, $2)
			ON CONFLICT (region) DO UPDATE SET searches = EXCLUDED.searches`, s.Region, s.Searches)
		if err != nil {
			return err
		}
	}
	return nil
}
