package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akarpov/storefront/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

const productColumns = `id, name, description, price, category, stock_quantity, image_url, is_available, created_at, updated_at`

// Columns exposed for sorting. Anything else falls back to name to keep
// user input out of the ORDER BY clause.
var sortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

func orderBy(sort string) string {
	direction := "ASC"
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		sort = sort[1:]
	}

	column, ok := sortColumns[sort]
	if !ok {
		column = "name"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

// List returns one page of products matching the query plus the total number
// of matching rows.
func (r *ProductRepository) List(ctx context.Context, q model.ProductQuery) ([]model.Product, int64, error) {
	where := `WHERE price BETWEEN $1 AND $2`
	args := []any{q.MinPrice, q.MaxPrice}

	if q.Category != "" {
		where += ` AND category = $3`
		args = append(args, q.Category)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM products ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	pageQuery := fmt.Sprintf(`SELECT %s FROM products %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderBy(q.Sort), len(args)+1, len(args)+2)
	args = append(args, q.Size, q.Page*q.Size)

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0, q.Size)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.StockQuantity, &p.ImageURL, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read products: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var p model.Product
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.StockQuantity, &p.ImageURL, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return p, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM products ORDER BY category`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}
