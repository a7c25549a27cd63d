package order

import (
	"context"
	"strings"
	"time"

	"sufishine-be/internal/logger"
	"sufishine-be/internal/utils"

	"go.uber.org/zap"
)

// ShipmentNotifier sends the shipment-dispatched email. Implemented by
// internal/notification; failures are always non-fatal here.
type ShipmentNotifier interface {
	SendShipmentDispatched(ctx context.Context, o *Order) error
}

// Broadcaster pushes order changes to connected admin clients.
type Broadcaster interface {
	OrderChanged(o *Order)
}

type Service interface {
	// Place persists a freshly assembled order. Called by checkout, not by
	// handlers directly.
	Place(ctx context.Context, o *Order) error

	Get(ctx context.Context, id string) (*Order, error)
	Track(ctx context.Context, orderNumber, email string) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	AdminList(ctx context.Context, filter ListFilter) ([]*Order, error)

	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (*Order, error)
	AssignTracking(ctx context.Context, id, trackingID string) (*Order, error)
	UpdateDeliveryNotes(ctx context.Context, id, notes string) (*Order, error)
	AttachTransactionID(ctx context.Context, orderNumber, email, transactionID string) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	notifier  ShipmentNotifier
	broadcast Broadcaster
}

func NewService(repo Repository, notifier ShipmentNotifier, broadcast Broadcaster) Service {
	return &service{repo: repo, notifier: notifier, broadcast: broadcast}
}

func (s *service) Place(ctx context.Context, o *Order) error {
	if err := s.repo.Insert(ctx, o); err != nil {
		return err
	}
	s.publish(o)
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Track is the customer-facing lookup. Guests prove ownership with the email
// captured at checkout; a mismatch reads as not-found, not as forbidden.
func (s *service) Track(ctx context.Context, orderNumber, email string) (*Order, error) {
	o, err := s.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(o.CustomerEmail, email) {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.List(ctx, ListFilter{UserID: &userID})
}

func (s *service) AdminList(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	o.Status = status
	s.publish(o)
	return o, nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	o.PaymentStatus = status
	s.publish(o)
	return o, nil
}

// AssignTracking attaches the carrier consignment number, stamps the
// shipped time, flips the order to shipped, and makes exactly one
// shipment-notification attempt. Email failure never undoes the update.
func (s *service) AssignTracking(ctx context.Context, id, trackingID string) (*Order, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, ErrMissingTrackingID
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status.IsTerminal() {
		return nil, ErrOrderTerminal
	}

	shippedAt := time.Now().UTC()
	if err := s.repo.AssignTracking(ctx, id, trackingID, shippedAt); err != nil {
		return nil, err
	}

	o.TrackingID = &trackingID
	o.TrackingStatus = utils.StrPtr("shipped")
	o.ShippedAt = &shippedAt
	o.Status = StatusShipped

	if s.notifier != nil {
		if err := s.notifier.SendShipmentDispatched(ctx, o); err != nil {
			logger.FromCtx(ctx).Error("shipment notification failed",
				zap.String("order_number", o.OrderNumber),
				zap.Error(err),
			)
		}
	}

	s.publish(o)
	return o, nil
}

func (s *service) UpdateDeliveryNotes(ctx context.Context, id, notes string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDeliveryNotes(ctx, id, notes); err != nil {
		return nil, err
	}

	o.DeliveryNotes = &notes
	return o, nil
}

// AttachTransactionID records the customer's proof of payment for a manual
// method. Ownership is checked the same way as Track.
func (s *service) AttachTransactionID(ctx context.Context, orderNumber, email, transactionID string) (*Order, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}

	o, err := s.Track(ctx, orderNumber, email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AttachTransactionID(ctx, o.ID, transactionID); err != nil {
		return nil, err
	}

	o.TransactionID = &transactionID
	s.publish(o)
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) publish(o *Order) {
	if s.broadcast != nil {
		s.broadcast.OrderChanged(o)
	}
}
