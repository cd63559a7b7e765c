package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type PostgresDealerRepository struct {
	db *sql.DB
}

func NewPostgresDealerRepository(db *sql.DB) *PostgresDealerRepository {
	return &PostgresDealerRepository{db: db}
}

func (r *PostgresDealerRepository) GetAll() ([]models.Dealer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, region, location, inventory, phone, email FROM dealers ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dealers := []models.Dealer{}
	for rows.Next() {
		var d models.Dealer
		if err := rows.Scan(&d.ID, &d.Name, &d.Region, &d.Location, &d.Inventory, &d.Phone, &d.Email); err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}

func (r *PostgresDealerRepository) Add(dealers ...models.Dealer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, d := range dealers {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO dealers (id, name, region, location, inventory, phone, email) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID, d.Name, d.Region, d.Location, d.Inventory, d.Phone, d.Email)
		if err != nil {
			return translatePgError(err)
		}
	}
	return nil
}
