package checkout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sufishine-be/internal/payment"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const sessionColumns = `id, step, user_id, guest_id, customer_name, customer_email, customer_phone,
		address_line, city, postal_code, country, payment_method, transaction_id, order_id,
		created_at, expires_at, completed_at`

func (r *repository) Create(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO checkout_sessions (id, step, user_id, guest_id, customer_name, customer_email,
			customer_phone, address_line, city, postal_code, country, payment_method,
			transaction_id, order_id, created_at, expires_at, completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, string(s.Step), s.UserID, s.GuestID,
		s.CustomerName, s.CustomerEmail, s.CustomerPhone,
		s.Address.Address, s.Address.City, s.Address.PostalCode, s.Address.Country,
		methodString(s.Method), s.TransactionID, s.OrderID,
		s.CreatedAt, s.ExpiresAt, s.CompletedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM checkout_sessions WHERE id = $1`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *repository) Update(ctx context.Context, s *Session) error {
	query := `
		UPDATE checkout_sessions
		SET step = $2, customer_name = $3, customer_email = $4, customer_phone = $5,
			address_line = $6, city = $7, postal_code = $8, country = $9,
			payment_method = $10, transaction_id = $11, order_id = $12, completed_at = $13
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		s.ID, string(s.Step),
		s.CustomerName, s.CustomerEmail, s.CustomerPhone,
		s.Address.Address, s.Address.City, s.Address.PostalCode, s.Address.Country,
		methodString(s.Method), s.TransactionID, s.OrderID, s.CompletedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *repository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM checkout_sessions WHERE completed_at IS NULL AND expires_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func methodString(m *payment.Method) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

func scanSession(row interface{ Scan(dest ...any) error }) (*Session, error) {
	var (
		s      Session
		step   string
		method sql.NullString
	)

	err := row.Scan(
		&s.ID, &step, &s.UserID, &s.GuestID,
		&s.CustomerName, &s.CustomerEmail, &s.CustomerPhone,
		&s.Address.Address, &s.Address.City, &s.Address.PostalCode, &s.Address.Country,
		&method, &s.TransactionID, &s.OrderID,
		&s.CreatedAt, &s.ExpiresAt, &s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Step = Step(step)
	if method.Valid {
		m := payment.Method(method.String)
		s.Method = &m
	}
	return &s, nil
}
