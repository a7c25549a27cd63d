package api

import (
	"sufishine-be/internal/cart"
	"sufishine-be/internal/checkout"
	"sufishine-be/internal/order"
	"sufishine-be/internal/product"
	"sufishine-be/internal/review"
	"sufishine-be/internal/user"
)

// Handler bundles the services the route tree dispatches to.
type Handler struct {
	Users    user.Service
	Products product.Service
	Carts    cart.Service
	Checkout checkout.Service
	Orders   order.Service
	Reviews  review.Service
	Hub      *Hub
}
