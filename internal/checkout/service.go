package checkout

import (
	"context"
	"strings"
	"time"

	"sufishine-be/internal/cart"
	"sufishine-be/internal/logger"
	"sufishine-be/internal/notification"
	"sufishine-be/internal/order"
	"sufishine-be/internal/payment"
	"sufishine-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionTTL bounds abandoned sessions; expired ones are swept by the
// janitor in cmd/server.
const sessionTTL = 24 * time.Hour

// ConfirmationNotifier sends the order-confirmation email. Implemented by
// internal/notification; failures never roll back a placed order.
type ConfirmationNotifier interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

type Service interface {
	Start(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	SetShipping(ctx context.Context, id uuid.UUID, in ShippingInput) (*Session, error)
	SetPayment(ctx context.Context, id uuid.UUID, method string) (*Session, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
	SubmitTransactionID(ctx context.Context, id uuid.UUID, transactionID string) (*SubmitResult, error)
}

type service struct {
	repo     Repository
	carts    cart.Service
	orders   order.Service
	notifier ConfirmationNotifier
	now      func() time.Time
}

func NewService(repo Repository, carts cart.Service, orders order.Service, notifier ConfirmationNotifier) Service {
	return &service{
		repo:     repo,
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Start(ctx context.Context) (*Session, error) {
	sess := &Session{
		ID:        uuid.New(),
		Step:      StepShipping,
		CreatedAt: s.now().UTC(),
	}
	sess.ExpiresAt = sess.CreatedAt.Add(sessionTTL)

	if id, ok := utils.GetUserIDFromContext(ctx); ok {
		sess.UserID = &id
	} else if gid := utils.GetGuestIDFromContext(ctx); gid != "" {
		sess.GuestID = &gid
	} else {
		return nil, cart.ErrMissingIdentity
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		logger.FromCtx(ctx).Error("failed to create checkout session", zap.Error(err))
		return nil, ErrFailedCreateSession
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.load(ctx, id)
}

func (s *service) SetShipping(ctx context.Context, id uuid.UUID, in ShippingInput) (*Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Country = strings.TrimSpace(in.Country)

	if in.Name == "" || in.Email == "" || in.Phone == "" ||
		in.Address == "" || in.City == "" || in.PostalCode == "" || in.Country == "" {
		return nil, ErrMissingShippingFields
	}

	sess.CustomerName = in.Name
	sess.CustomerEmail = in.Email
	sess.CustomerPhone = utils.NormalizePhonePK(in.Phone)
	sess.Address = order.Address{
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
	sess.Step = StepPayment

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) SetPayment(ctx context.Context, id uuid.UUID, method string) (*Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.CustomerEmail == "" {
		return nil, ErrShippingIncomplete
	}

	m, err := payment.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	sess.Method = &m
	// changing the method invalidates any previously entered reference
	sess.TransactionID = nil
	sess.Step = StepReview

	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit finishes the wizard. Cash on delivery places the order straight
// away. Manual methods without a transaction id detour to the payment
// instructions payload and leave the cart and session intact; nothing is
// written to the orders table until the reference arrives.
func (s *service) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.CustomerEmail == "" {
		return nil, ErrShippingIncomplete
	}
	if sess.Method == nil {
		return nil, ErrPaymentNotChosen
	}

	c, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c.TotalItems() == 0 {
		return nil, cart.ErrCartEmpty
	}

	method := *sess.Method
	if method.Manual() && sess.TransactionID == nil {
		sess.Step = StepPaymentInstructions
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return &SubmitResult{Instructions: s.instructions(sess, c)}, nil
	}

	o, err := s.place(ctx, sess, c)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Order: o}, nil
}

// SubmitTransactionID completes the payment-instructions detour. The
// reference is stored as given; verification is a manual admin step.
func (s *service) SubmitTransactionID(ctx context.Context, id uuid.UUID, transactionID string) (*SubmitResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Method == nil {
		return nil, ErrPaymentNotChosen
	}

	c, err := s.carts.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c.TotalItems() == 0 {
		return nil, cart.ErrCartEmpty
	}

	sess.TransactionID = &transactionID
	o, err := s.place(ctx, sess, c)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Order: o}, nil
}

// place snapshots the cart into a durable order, sends the confirmation
// email, clears the cart, and closes the session. Email and cart failures
// are logged and never surfaced; the order is already committed.
func (s *service) place(ctx context.Context, sess *Session, c *cart.Cart) (*order.Order, error) {
	method := *sess.Method
	quote := c.ShippingQuote(method)
	now := s.now().UTC()

	items := make([]order.Item, 0, len(c.Items))
	for _, line := range c.Lines() {
		items = append(items, order.Item{
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
			ImageURL: line.ImageURL,
		})
	}

	o := &order.Order{
		ID:              uuid.NewString(),
		OrderNumber:     utils.GenerateOrderNumber(),
		UserID:          sess.UserID,
		CustomerName:    sess.CustomerName,
		CustomerEmail:   sess.CustomerEmail,
		CustomerPhone:   sess.CustomerPhone,
		Items:           items,
		Subtotal:        c.TotalPrice(),
		ShippingCharge:  quote.Charge,
		TotalAmount:     c.TotalPrice() + quote.Charge,
		PaymentMethod:   method,
		PaymentStatus:   order.PaymentStatusPending,
		Status:          order.StatusPending,
		TransactionID:   sess.TransactionID,
		ShippingAddress: sess.Address,
		CreatedAt:       now,
	}

	if err := s.orders.Place(ctx, o); err != nil {
		logger.FromCtx(ctx).Error("failed to place order",
			zap.String("session_id", sess.ID.String()), zap.Error(err))
		return nil, err
	}

	if err := s.notifier.SendOrderConfirmation(ctx, o); err != nil {
		logger.FromCtx(ctx).Warn("order confirmation email failed",
			zap.String("order_number", o.OrderNumber), zap.Error(err))
	}

	if err := s.carts.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Warn("failed to clear cart after checkout",
			zap.String("order_number", o.OrderNumber), zap.Error(err))
	}

	sess.Step = StepCompleted
	sess.OrderID = &o.ID
	sess.CompletedAt = &now
	if err := s.save(ctx, sess); err != nil {
		logger.FromCtx(ctx).Warn("failed to close checkout session",
			zap.String("session_id", sess.ID.String()), zap.Error(err))
	}

	return o, nil
}

func (s *service) instructions(sess *Session, c *cart.Cart) *InstructionsPayload {
	method := *sess.Method
	total := c.TotalWithShipping(method)
	acc, _ := payment.AccountFor(method)

	// the order number does not exist yet, so the reference placeholder
	// falls back to the session id
	steps := payment.InstructionsFor(method, sess.ID.String(), notification.FormatRs(total))

	return &InstructionsPayload{
		Method:  method,
		Account: acc,
		Steps:   steps,
		Amount:  total,
	}
}

// load fetches the session and enforces ownership, expiry, and completion.
// A session that belongs to someone else reads as not found.
func (s *service) load(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.owns(ctx, sess) {
		return nil, ErrSessionNotFound
	}
	if sess.CompletedAt != nil {
		return nil, ErrSessionCompleted
	}
	if s.now().After(sess.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return sess, nil
}

func (s *service) owns(ctx context.Context, sess *Session) bool {
	if sess.UserID != nil {
		id, ok := utils.GetUserIDFromContext(ctx)
		return ok && id == *sess.UserID
	}
	if sess.GuestID != nil {
		return utils.GetGuestIDFromContext(ctx) == *sess.GuestID
	}
	return false
}

func (s *service) save(ctx context.Context, sess *Session) error {
	if err := s.repo.Update(ctx, sess); err != nil {
		logger.FromCtx(ctx).Error("failed to update checkout session",
			zap.String("session_id", sess.ID.String()), zap.Error(err))
		return ErrFailedUpdateSession
	}
	return nil
}
