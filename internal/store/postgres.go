package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rmello/shopfront/internal/models"
)

// Schema for the stub catalog table:
//
//	CREATE TABLE products (
//	    id          SERIAL PRIMARY KEY,
//	    name        TEXT NOT NULL,
//	    description TEXT NOT NULL DEFAULT '',
//	    price       NUMERIC NOT NULL,
//	    quantity    INT NOT NULL,
//	    sku         TEXT NOT NULL DEFAULT '',
//	    category    TEXT NOT NULL DEFAULT '',
//	    image_url   TEXT NOT NULL DEFAULT '',
//	    status      TEXT NOT NULL DEFAULT ''
//	);

// PostgresCatalogStore is a Postgres-backed implementation of CatalogStore.
type PostgresCatalogStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewPostgresCatalogStore(db *sql.DB) *PostgresCatalogStore {
	return &PostgresCatalogStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const productColumns = "id, name, description, price, quantity, sku, category, image_url, status"

func scanProduct(row sq.RowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.SKU, &p.Category, &p.ImageURL, &p.Status)
	return p, err
}

func (s *PostgresCatalogStore) Create(p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := s.sb.Insert("products").
		SetMap(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"quantity":    p.Quantity,
			"sku":         p.SKU,
			"category":    p.Category,
			"image_url":   p.ImageURL,
			"status":      p.Status,
		}).
		Suffix("RETURNING id").
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&p.ID)
	return p, err
}

func (s *PostgresCatalogStore) GetAll() ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := s.sb.Select(productColumns).
		From("products").
		OrderBy("id").
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresCatalogStore) GetByID(id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(s.sb.Select(productColumns).
		From("products").
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (s *PostgresCatalogStore) DecrementStock(id, qty int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Single statement so concurrent orders cannot oversell.
	p, err := scanProduct(s.sb.Update("products").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Set("status", sq.Expr("CASE WHEN quantity - ? = 0 THEN ? ELSE status END", qty, models.StatusOutOfStock)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"quantity": qty}).
		Suffix("RETURNING " + productColumns).
		RunWith(s.db).
		QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		// Either the product is missing or there is not enough stock.
		if _, lookupErr := s.GetByID(id); lookupErr != nil {
			return models.Product{}, lookupErr
		}
		return models.Product{}, ErrInsufficientStock
	}
	return p, err
}
