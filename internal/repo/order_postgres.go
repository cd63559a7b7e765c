package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dealer_id, product_id, quantity, buyer_name, status, delivery_date
		FROM orders ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.DealerID, &o.ProductID, &o.Quantity, &o.BuyerName, &o.Status, &o.DeliveryDate); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	// The table lock keeps "o" || count+1 unique under concurrent inserts.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE orders IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return models.Order{}, err
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, dealer_id, product_id, quantity, buyer_name, status, delivery_date)
		SELECT 'o' || (COUNT(*) + 1), $1, $2, $3, $4, $5, $6 FROM orders
		RETURNING id`,
		o.DealerID, o.ProductID, o.Quantity, o.BuyerName, o.Status, o.DeliveryDate).Scan(&o.ID)
	if err != nil {
		return models.Order{}, translatePgError(err)
	}
	if err := tx.Commit(); err != nil {
		return models.Order{}, err
	}
	return o, nil
}
