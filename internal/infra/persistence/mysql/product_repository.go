package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"example.com/producthub/internal/domain/paging"
	domproduct "example.com/producthub/internal/domain/product"
)

const productColumns = "id, name, description, price, stock, create_time, update_time, is_active"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// EnsureSchema creates the products table when it does not exist yet.
// The DSN must carry parseTime=true for the DATETIME columns to scan.
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS products (
            id          CHAR(36)      NOT NULL PRIMARY KEY,
            name        VARCHAR(100)  NOT NULL,
            description VARCHAR(500)  NOT NULL,
            price       DECIMAL(12,2) NOT NULL,
            stock       BIGINT        NOT NULL,
            create_time DATETIME(6)   NOT NULL,
            update_time DATETIME(6)   NOT NULL,
            is_active   TINYINT(1)    NOT NULL DEFAULT 1
        )
    `)
	if err != nil {
		return fmt.Errorf("ensure products schema: %w", err)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO products (`+productColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `, p.ID, p.Name, p.Description, p.Price, p.Stock, p.CreateTime, p.UpdateTime, p.IsActive)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET name = ?, description = ?, price = ?, stock = ?, update_time = ?, is_active = ?
        WHERE id = ?
    `, p.Name, p.Description, p.Price, p.Stock, p.UpdateTime, p.IsActive, p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+productColumns+` FROM products WHERE id = ?
    `, id)

	var p domproduct.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT `+productColumns+` FROM products ORDER BY name ASC, id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// GetPaged runs the filtered listing as filter, count, sort, then page.
// TotalCount is taken before LIMIT/OFFSET so paging metadata stays correct
// even when the requested page is past the end.
func (r *ProductRepository) GetPaged(ctx context.Context, params domproduct.QueryParams) (paging.PagedResult[*domproduct.Product], error) {
	var empty paging.PagedResult[*domproduct.Product]

	where, args := listFilters(params)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&totalCount); err != nil {
		return empty, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + orderClause(params) + ` LIMIT ? OFFSET ?`
	args = append(args, params.PageSize, (params.PageNumber-1)*params.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
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
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// listFilters composes the WHERE clause for the enumerated filter set:
// case-insensitive search on name/description, active flag, inclusive
// price bounds. Returns an empty string when nothing is filtered.
func listFilters(params domproduct.QueryParams) (string, []any) {
	var clauses []string
	var args []any

	if params.SearchTerm != "" {
		pattern := "%" + strings.ToLower(escapeLike(params.SearchTerm)) + "%"
		clauses = append(clauses, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if params.IsActive != nil {
		clauses = append(clauses, "is_active = ?")
		args = append(args, *params.IsActive)
	}
	if params.MinPrice != nil {
		clauses = append(clauses, "price >= ?")
		args = append(args, *params.MinPrice)
	}
	if params.MaxPrice != nil {
		clauses = append(clauses, "price <= ?")
		args = append(args, *params.MaxPrice)
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

// orderClause maps the whitelisted sort field to its column. id is the
// secondary key so pages stay stable among ties.
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

// escapeLike neutralizes LIKE metacharacters in user-supplied search terms.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *domproduct.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreateTime, &p.UpdateTime, &p.IsActive)
}

func collectProducts(rows *sql.Rows) ([]*domproduct.Product, error) {
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
