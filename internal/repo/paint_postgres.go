package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type PostgresPaintRepository struct {
	db *sql.DB
}

func NewPostgresPaintRepository(db *sql.DB) *PostgresPaintRepository {
	return &PostgresPaintRepository{db: db}
}

const paintColumns = `id, name, category, warehouse_stock, dealer_stock, price, region, last_sold_date`

func scanPaint(row interface{ Scan(...any) error }) (models.Paint, error) {
	var p models.Paint
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.WarehouseStock, &p.DealerStock, &p.Price, &p.Region, &p.LastSoldDate)
	return p, err
}

func (r *PostgresPaintRepository) GetAll() ([]models.Paint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+paintColumns+` FROM paints ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paints := []models.Paint{}
	for rows.Next() {
		p, err := scanPaint(rows)
		if err != nil {
			return nil, err
		}
		paints = append(paints, p)
	}
	return paints, rows.Err()
}

func (r *PostgresPaintRepository) GetByID(id string) (models.Paint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanPaint(r.db.QueryRowContext(ctx, `SELECT `+paintColumns+` FROM paints WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Paint{}, ErrPaintNotFound
	}
	return p, err
}

func (r *PostgresPaintRepository) SetStock(id string, warehouse, dealer *int) (models.Paint, models.Paint, error) {
	query := `
		UPDATE paints p
		SET warehouse_stock = COALESCE($1::int, p.warehouse_stock),
			dealer_stock = COALESCE($2::int, p.dealer_stock)
		FROM (SELECT id, warehouse_stock, dealer_stock FROM paints WHERE id = $3 FOR UPDATE) old
		WHERE p.id = old.id
		RETURNING p.id, p.name, p.category, p.warehouse_stock, p.dealer_stock, p.price, p.region,
			p.last_sold_date, old.warehouse_stock, old.dealer_stock`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var after models.Paint
	var oldWarehouse, oldDealer int
	err := r.db.QueryRowContext(ctx, query, warehouse, dealer, id).
		Scan(&after.ID, &after.Name, &after.Category, &after.WarehouseStock, &after.DealerStock, &after.Price, &after.Region,
			&after.LastSoldDate, &oldWarehouse, &oldDealer)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Paint{}, models.Paint{}, ErrPaintNotFound
	}
	if err != nil {
		return models.Paint{}, models.Paint{}, err
	}

	before := after
	before.WarehouseStock, before.DealerStock = oldWarehouse, oldDealer
	return before, after, nil
}

func (r *PostgresPaintRepository) AdjustDealerStock(id string, delta int) (models.Paint, int, error) {
	query := `
		UPDATE paints p
		SET dealer_stock = GREATEST(0, p.dealer_stock + $1)
		FROM (SELECT id, dealer_stock FROM paints WHERE id = $2 FOR UPDATE) old
		WHERE p.id = old.id
		RETURNING p.id, p.name, p.category, p.warehouse_stock, p.dealer_stock, p.price, p.region,
			p.last_sold_date, old.dealer_stock`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Paint
	var before int
	err := r.db.QueryRowContext(ctx, query, delta, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.WarehouseStock, &p.DealerStock, &p.Price, &p.Region, &p.LastSoldDate, &before)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Paint{}, 0, ErrPaintNotFound
	}
	if err != nil {
		return models.Paint{}, 0, err
	}
	return p, p.DealerStock - before, nil
}

// Insert adds a paint; used for seeding.
func (r *PostgresPaintRepository) Insert(p models.Paint) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO paints (`+paintColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Category, p.WarehouseStock, p.DealerStock, p.Price, p.Region, p.LastSoldDate)
	return translatePgError(err)
}
