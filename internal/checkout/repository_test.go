package checkout

import (
	"context"
	"testing"
	"time"

	"sufishine-be/internal/payment"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionRows = []string{
	"id", "step", "user_id", "guest_id", "customer_name", "customer_email", "customer_phone",
	"address_line", "city", "postal_code", "country", "payment_method", "transaction_id", "order_id",
	"created_at", "expires_at", "completed_at",
}

func TestRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	gid := "guest-abc"
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.New(),
		Step:      StepShipping,
		GuestID:   &gid,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	mock.ExpectExec("INSERT INTO checkout_sessions").
		WithArgs(sess.ID, "shipping", nil, gid, "", "", "", "", "", "", "",
			nil, nil, nil, now, now.Add(sessionTTL), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), sess)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()
	gid := "guest-abc"
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM checkout_sessions WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(sessionRows).AddRow(
			id, "review", nil, gid, "Ayesha Khan", "ayesha@example.com", "+923001234567",
			"House 12", "Lahore", "54000", "Pakistan", "jazzcash", nil, nil,
			now, now.Add(sessionTTL), nil,
		))

	sess, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, StepReview, sess.Step)
	require.NotNil(t, sess.Method)
	assert.Equal(t, payment.MethodJazzCash, *sess.Method)
	assert.Equal(t, "Lahore", sess.Address.City)
	assert.Nil(t, sess.CompletedAt)
}

func TestRepositoryGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM checkout_sessions WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(sessionRows))

	_, err = repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepositoryUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	sess := &Session{ID: uuid.New(), Step: StepPayment}

	mock.ExpectExec("UPDATE checkout_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), sess)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepositoryDeleteExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	cutoff := time.Now().UTC()

	mock.ExpectExec("DELETE FROM checkout_sessions WHERE completed_at IS NULL AND expires_at").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
