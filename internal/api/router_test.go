package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sufishine-be/internal/order"
	"sufishine-be/internal/product"
	"sufishine-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Browse(ctx context.Context, search *string) ([]*product.Product, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) AdminList(ctx context.Context, search *string) ([]*product.Product, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) AdminGet(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, input product.NewProductInput) (*product.Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, input product.UpdateProductInput) (*product.Product, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Track(ctx context.Context, orderNumber, email string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListForUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) AdminList(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdatePaymentStatus(ctx context.Context, id string, status order.PaymentStatus) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) AssignTracking(ctx context.Context, id, trackingID string) (*order.Order, error) {
	args := m.Called(ctx, id, trackingID)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateDeliveryNotes(ctx context.Context, id, notes string) (*order.Order, error) {
	args := m.Called(ctx, id, notes)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) AttachTransactionID(ctx context.Context, orderNumber, email, transactionID string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber, email, transactionID)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupRouter(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if h.Hub == nil {
		h.Hub = NewHub()
	}
	return NewRouter(h)
}

func TestListProducts(t *testing.T) {
	products := new(MockProductService)
	products.On("Browse", mock.Anything, (*string)(nil)).
		Return([]*product.Product{{ID: "p1", Name: "Rose Attar", Price: 250, Active: true}}, nil)

	r := setupRouter(t, &Handler{Products: products})

	req := httptest.NewRequest("GET", "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Products []product.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Rose Attar", body.Products[0].Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	products := new(MockProductService)
	products.On("Get", mock.Anything, "missing").Return(nil, product.ErrProductNotFound)

	r := setupRouter(t, &Handler{Products: products})

	req := httptest.NewRequest("GET", "/products/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackOrder(t *testing.T) {
	orders := new(MockOrderService)
	orders.On("Track", mock.Anything, "ORD-20260830-120000-0042", "ayesha@example.com").
		Return(&order.Order{OrderNumber: "ORD-20260830-120000-0042", Status: order.StatusShipped}, nil)

	r := setupRouter(t, &Handler{Orders: orders})

	body := `{"order_number":"ORD-20260830-120000-0042","email":"ayesha@example.com"}`
	req := httptest.NewRequest("POST", "/orders/track", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"shipped"`)
}

func TestTrackOrder_MissingEmail(t *testing.T) {
	r := setupRouter(t, &Handler{Orders: new(MockOrderService)})

	req := httptest.NewRequest("POST", "/orders/track",
		strings.NewReader(`{"order_number":"ORD-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShippingQuote(t *testing.T) {
	r := setupRouter(t, &Handler{})

	req := httptest.NewRequest("GET", "/shipping/quote?quantity=6", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"charge":300`)
}

func TestShippingQuote_ManualMethodWaives(t *testing.T) {
	r := setupRouter(t, &Handler{})

	req := httptest.NewRequest("GET", "/shipping/quote?quantity=6&payment_method=jazzcash", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"charge":0`)
	assert.Contains(t, w.Body.String(), `"waived":true`)
}

func TestPaymentMethods(t *testing.T) {
	r := setupRouter(t, &Handler{})

	req := httptest.NewRequest("GET", "/payment/methods", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cash_on_delivery")
	assert.Contains(t, w.Body.String(), "JazzCash")
}

func TestAdminRoutesGuarded(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := setupRouter(t, &Handler{})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("customer token", func(t *testing.T) {
		token, err := user.GenerateJWT(5, "customer", "c@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminUpdateStatus_InvalidTransition(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	orders := new(MockOrderService)
	orders.On("UpdateStatus", mock.Anything, "o1", order.StatusConfirmed).
		Return(nil, order.ErrInvalidTransition)

	r := setupRouter(t, &Handler{Orders: orders})

	token, err := user.GenerateJWT(1, "admin", "root@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/admin/orders/o1/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
