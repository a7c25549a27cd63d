package cart

import (
	"context"
	"fmt"

	"sufishine-be/internal/utils"
)

// Service binds carts to the request identity and persists a snapshot after
// every mutation.
type Service interface {
	Get(ctx context.Context) (*Cart, error)
	AddItem(ctx context.Context, item Item, qty int) (*Cart, error)
	UpdateQuantity(ctx context.Context, productID string, qty int) (*Cart, error)
	RemoveItem(ctx context.Context, productID string) (*Cart, error)
	Clear(ctx context.Context) error
}

type service struct {
	store SnapshotStore
}

func NewService(store SnapshotStore) Service {
	return &service{store: store}
}

// Key derives the snapshot key from the request identity: the
// authenticated user id when present, otherwise the guest session id.
func Key(ctx context.Context) (string, error) {
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		return fmt.Sprintf("cart:user:%d", userID), nil
	}
	if guestID := utils.GetGuestIDFromContext(ctx); guestID != "" {
		return "cart:guest:" + guestID, nil
	}
	return "", ErrMissingIdentity
}

func (s *service) Get(ctx context.Context) (*Cart, error) {
	key, err := Key(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Load(ctx, key)
}

func (s *service) AddItem(ctx context.Context, item Item, qty int) (*Cart, error) {
	// request payloads carry the price, so it is checked here before it can
	// reach a stored snapshot and later an order's totals
	if item.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(ctx, func(c *Cart) error {
		c.AddItem(item, qty)
		return nil
	})
}

func (s *service) UpdateQuantity(ctx context.Context, productID string, qty int) (*Cart, error) {
	return s.mutate(ctx, func(c *Cart) error {
		if _, ok := c.Items[productID]; !ok {
			return ErrItemNotFound
		}
		c.UpdateQuantity(productID, qty)
		return nil
	})
}

func (s *service) RemoveItem(ctx context.Context, productID string) (*Cart, error) {
	return s.mutate(ctx, func(c *Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

func (s *service) Clear(ctx context.Context) error {
	key, err := Key(ctx)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

func (s *service) mutate(ctx context.Context, fn func(*Cart) error) (*Cart, error) {
	key, err := Key(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, key, c); err != nil {
		return nil, err
	}
	return c, nil
}
