package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/producthub/internal/domain/paging"
	domproduct "example.com/producthub/internal/domain/product"
)

const productColumns = "id, name, description, price, stock, create_time, update_time, is_active"

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// EnsureSchema creates the products table when it does not exist yet.
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS products (
            id          UUID          NOT NULL PRIMARY KEY,
            name        VARCHAR(100)  NOT NULL,
            description VARCHAR(500)  NOT NULL,
            price       NUMERIC(12,2) NOT NULL,
            stock       BIGINT        NOT NULL,
            create_time TIMESTAMPTZ   NOT NULL,
            update_time TIMESTAMPTZ   NOT NULL,
            is_active   BOOLEAN       NOT NULL DEFAULT TRUE
        )
    `)
	if err != nil {
		return fmt.Errorf("ensure products schema: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO products (`+productColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CreateTime, p.UpdateTime, p.IsActive)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE products SET name = $1, description = $2, price = $3, stock = $4, update_time = $5, is_active = $6
        WHERE id = $7
    `, p.Name, p.Description, p.Price, p.Stock, p.UpdateTime, p.IsActive, p.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domproduct.Product, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT `+productColumns+` FROM products WHERE id = $1
    `, id)

	var p domproduct.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+productColumns+` FROM products ORDER BY name ASC, id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// GetPaged runs the filtered listing as filter, count, sort, then page,
// counting matches before LIMIT/OFFSET is applied.
func (r *ProductRepository) GetPaged(ctx context.Context, params domproduct.QueryParams) (paging.PagedResult[*domproduct.Product], error) {
	var empty paging.PagedResult[*domproduct.Product]

	where, args := listFilters(params)

	var totalCount int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&totalCount); err != nil {
		return empty, err
	}

	query := fmt.Sprintf(`SELECT %s FROM products%s%s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderClause(params), len(args)+1, len(args)+2)
	args = append(args, params.PageSize, (params.PageNumber-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	items, err := collectProducts(rows)
	if err != nil {
		return empty, err
	}
	return paging.New(items, params.PageNumber, params.PageSize, totalCount), nil
}

func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// listFilters composes the WHERE clause with numbered placeholders. ILIKE
// gives the case-insensitive search the MySQL store gets from LOWER().
func listFilters(params domproduct.QueryParams) (string, []any) {
	var clauses []string
	var args []any

	if params.SearchTerm != "" {
		args = append(args, "%"+escapeLike(params.SearchTerm)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		clauses = append(clauses, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if params.MinPrice != nil {
		args = append(args, *params.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if params.MaxPrice != nil {
		args = append(args, *params.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

var sortColumns = map[domproduct.SortField]string{
	domproduct.SortByName:       "name",
	domproduct.SortByPrice:      "price",
	domproduct.SortByStock:      "stock",
	domproduct.SortByCreateTime: "create_time",
	domproduct.SortByUpdateTime: "update_time",
}

func orderClause(params domproduct.QueryParams) string {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if params.SortOrder == domproduct.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id ASC", column, direction)
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func scanProduct(row pgx.Row, p *domproduct.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreateTime, &p.UpdateTime, &p.IsActive)
}

func collectProducts(rows pgx.Rows) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	for rows.Next() {
		var p domproduct.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
