package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/payment"

	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	AssignTracking(ctx context.Context, id, trackingID string, shippedAt time.Time) error
	UpdateDeliveryNotes(ctx context.Context, id, notes string) error
	AttachTransactionID(ctx context.Context, id, transactionID string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, order_number, user_id, customer_name, customer_email, customer_phone,
	items, subtotal, shipping_charge, total_amount,
	payment_method, payment_status, status,
	transaction_id, tracking_id, tracking_status, delivery_notes,
	address, city, postal_code, country,
	shipped_at, created_at`

func (r *repository) Insert(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, customer_name, customer_email, customer_phone,
			items, subtotal, shipping_charge, total_amount,
			payment_method, payment_status, status,
			transaction_id, address, city, postal_code, country, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		o.ID, o.OrderNumber, o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		items, o.Subtotal, o.ShippingCharge, o.TotalAmount,
		string(o.PaymentMethod), string(o.PaymentStatus), string(o.Status),
		o.TransactionID,
		o.ShippingAddress.Address, o.ShippingAddress.City,
		o.ShippingAddress.PostalCode, o.ShippingAddress.Country,
		o.CreatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
	return err
}

// decodeItems tolerates a corrupt items column: the row still lists, with an
// empty item list, instead of breaking the whole view.
func decodeItems(ctx context.Context, orderID string, raw []byte) []Item {
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.FromCtx(ctx).Warn("db: malformed items JSON on order",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return []Item{}
	}
	if items == nil {
		items = []Item{}
	}
	return items
}

func (r *repository) scanOrder(ctx context.Context, row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	var rawItems []byte
	var method, payStatus, status string

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&rawItems, &o.Subtotal, &o.ShippingCharge, &o.TotalAmount,
		&method, &payStatus, &status,
		&o.TransactionID, &o.TrackingID, &o.TrackingStatus, &o.DeliveryNotes,
		&o.ShippingAddress.Address, &o.ShippingAddress.City,
		&o.ShippingAddress.PostalCode, &o.ShippingAddress.Country,
		&o.ShippedAt, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Items = decodeItems(ctx, o.ID, rawItems)
	o.PaymentMethod = payment.Method(method)
	o.PaymentStatus = PaymentStatus(payStatus)
	o.Status = Status(status)
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := r.scanOrder(ctx, row)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)

	o, err := r.scanOrder(ctx, row)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`

	var conds []string
	var args []any
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(order_number ILIKE $%d OR customer_email ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := r.scanOrder(ctx, rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	return r.execOne(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error {
	return r.execOne(ctx, `UPDATE orders SET payment_status = $1 WHERE id = $2`, string(status), id)
}

// AssignTracking sets the carrier consignment fields together with the
// status flip, in one statement.
func (r *repository) AssignTracking(ctx context.Context, id, trackingID string, shippedAt time.Time) error {
	return r.execOne(ctx, `
		UPDATE orders
		SET tracking_id = $1, tracking_status = 'shipped', shipped_at = $2, status = 'shipped'
		WHERE id = $3
	`, trackingID, shippedAt, id)
}

func (r *repository) UpdateDeliveryNotes(ctx context.Context, id, notes string) error {
	return r.execOne(ctx, `UPDATE orders SET delivery_notes = $1 WHERE id = $2`, notes, id)
}

func (r *repository) AttachTransactionID(ctx context.Context, id, transactionID string) error {
	return r.execOne(ctx, `UPDATE orders SET transaction_id = $1 WHERE id = $2`, transactionID, id)
}

// Delete removes the order row. Completed checkout sessions keep a
// reference to the orders they placed, so those are detached first or the
// delete would trip the foreign key.
func (r *repository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE checkout_sessions SET order_id = NULL WHERE order_id = $1`, id); err != nil {
		logger.FromCtx(ctx).Error("db: failed to detach checkout sessions", zap.Error(err))
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("db: order delete failed", zap.Error(err))
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit()
}

func (r *repository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("db: order mutation failed", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
