package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("product not found")

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Repository exposes the product collection. Products is the read-only surface
// consumed by the storefront; the mutation methods are used by the admin
// workflow only.
type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const productColumns = `id, name, description, category, price, image_data, image_mime_type`

func (r *PostgresRepository) Products(ctx context.Context) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageData, &p.ImageMimeType); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageData, &p.ImageMimeType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// Save inserts p when its ID is zero and updates the existing row otherwise.
// On insert the generated ID is written back into p.
func (r *PostgresRepository) Save(ctx context.Context, p *Product) error {
	if p.ID == 0 {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO products (name, description, category, price, image_data, image_mime_type)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, p.Name, p.Description, p.Category, p.Price, p.ImageData, p.ImageMimeType)
		if err := row.Scan(&p.ID); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name=$2, description=$3, category=$4, price=$5, image_data=$6, image_mime_type=$7
		WHERE id=$1
	`, p.ID, p.Name, p.Description, p.Category, p.Price, p.ImageData, p.ImageMimeType)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
