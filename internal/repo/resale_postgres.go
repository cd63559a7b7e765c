package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/shopspring/decimal"
)

type PostgresResaleRepository struct {
	db *sql.DB
}

func NewPostgresResaleRepository(db *sql.DB) *PostgresResaleRepository {
	return &PostgresResaleRepository{db: db}
}

const listingColumns = `id, seller_id, paint_name, quantity, condition, price, location, status, created_at`

func scanListing(row interface{ Scan(...any) error }) (models.ResaleListing, error) {
	var l models.ResaleListing
	err := row.Scan(&l.ID, &l.SellerID, &l.PaintName, &l.Quantity, &l.Condition, &l.Price, &l.Location, &l.Status, &l.CreatedAt)
	return l, err
}

func (r *PostgresResaleRepository) query(where string, args ...any) ([]models.ResaleListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM resale_listings `+where+` ORDER BY seq`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []models.ResaleListing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *PostgresResaleRepository) GetAll() ([]models.ResaleListing, error) {
	return r.query("")
}

func (r *PostgresResaleRepository) GetBySeller(sellerID string) ([]models.ResaleListing, error) {
	return r.query("WHERE seller_id = $1", sellerID)
}

func (r *PostgresResaleRepository) Create(l models.ResaleListing) (models.ResaleListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.ResaleListing{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE resale_listings IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return models.ResaleListing{}, err
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO resale_listings (`+listingColumns+`)
		SELECT 'rs' || (COUNT(*) + 1), $1, $2, $3, $4, $5, $6, $7, $8 FROM resale_listings
		RETURNING id`,
		l.SellerID, l.PaintName, l.Quantity, l.Condition, l.Price, l.Location, l.Status, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return models.ResaleListing{}, translatePgError(err)
	}
	if err := tx.Commit(); err != nil {
		return models.ResaleListing{}, err
	}
	return l, nil
}

func (r *PostgresResaleRepository) Buy(id string, qty decimal.Decimal) (models.ResaleListing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.ResaleListing{}, err
	}
	defer tx.Rollback()

	l, err := scanListing(tx.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM resale_listings WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResaleListing{}, ErrListingNotFound
	}
	if err != nil {
		return models.ResaleListing{}, err
	}
	if l.Quantity.LessThan(qty) {
		return models.ResaleListing{}, ErrInsufficientQuantity
	}

	l.Quantity = l.Quantity.Sub(qty)
	if l.Quantity.IsZero() {
		l.Status = models.ListingSold
	}
	if _, err := tx.ExecContext(ctx, `UPDATE resale_listings SET quantity = $1, status = $2 WHERE id = $3`, l.Quantity, l.Status, id); err != nil {
		return models.ResaleListing{}, err
	}
	return l, tx.Commit()
}
