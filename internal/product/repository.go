package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sufishine-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, id string, onlyActive bool) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, stock, image_url, active, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.ImageURL, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	var conds []string
	var args []any
	if opts.OnlyActive {
		conds = append(conds, "active = TRUE")
	}
	if opts.Search != nil && *opts.Search != "" {
		args = append(args, "%"+*opts.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string, onlyActive bool) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if onlyActive {
		query += " AND active = TRUE"
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	query := `
		INSERT INTO products (id, name, description, price, stock, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), input.Name, input.Description,
		input.Price, input.Stock, input.ImageURL,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateProductInput) (*Product, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if input.Name != nil {
		add("name", *input.Name)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Stock != nil {
		add("stock", *input.Stock)
	}
	if input.ImageURL != nil {
		add("image_url", *input.ImageURL)
	}
	if input.Active != nil {
		add("active", *input.Active)
	}
	if len(sets) == 0 {
		return nil, ErrEmptyUpdate
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id = $%d RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args),
	)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
