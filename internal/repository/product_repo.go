package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, price_cents, quantity, created_at, updated_at`

// ErrNotFound is returned by Update when the targeted row no longer exists,
// e.g. a delete raced the find-then-update sequence.
var ErrNotFound = errors.New("product row not found")

// ProductRepository defines operations for product data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, term string) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product. The id and created_at come back from the
// database; updated_at stays NULL until the first update.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (name, price_cents, quantity, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, p.Name, p.Price.Cents(), p.Quantity, p.CreatedAt).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every product, newest first
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// SearchByName retrieves products whose name contains the term,
// case-insensitively, newest first. The term is passed as a bound parameter
// with LIKE metacharacters escaped, never concatenated into the statement.
func (r *productRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products
            WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql, escapeLike(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Update writes all mutable fields in a single statement and sets
// updated_at server-side.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	sql := `UPDATE products SET name = $1, price_cents = $2, quantity = $3, updated_at = NOW()
            WHERE id = $4 RETURNING updated_at`
	var updatedAt time.Time
	err := r.db.QueryRow(ctx, sql, p.Name, p.Price.Cents(), p.Quantity, p.ID).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	p.UpdatedAt = &updatedAt
	return nil
}

// Delete removes a product and reports how many rows went away. Zero is not
// an error here; the service decides what a missing row means.
func (r *productRepository) Delete(ctx context.Context, id int64) (int64, error) {
	sql := `DELETE FROM products WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	p := &model.Product{}
	var cents int64
	if err := row.Scan(&p.ID, &p.Name, &cents, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Price = model.Price(cents)
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		var cents int64
		if err := rows.Scan(&p.ID, &p.Name, &cents, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p.Price = model.Price(cents)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// escapeLike escapes LIKE/ILIKE metacharacters so a search term only ever
// matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
