package api

import (
	"net/http"

	"sufishine-be/internal/cart"
	"sufishine-be/internal/payment"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView decorates the stored cart with the shipping quote for an optional
// payment method query parameter. Without one the quote assumes no waiver.
func (h *Handler) cartView(c *gin.Context, ct *cart.Cart) gin.H {
	method := payment.MethodCashOnDelivery
	if q := c.Query("payment_method"); q != "" {
		if m, err := payment.ParseMethod(q); err == nil {
			method = m
		}
	}
	quote := ct.ShippingQuote(method)

	return gin.H{
		"cart":           ct,
		"total_items":    ct.TotalItems(),
		"subtotal":       ct.TotalPrice(),
		"shipping":       quote,
		"total_amount":   ct.TotalPrice() + quote.Charge,
		"payment_method": method,
	}
}

func (h *Handler) getCart(c *gin.Context) {
	ct, err := h.Carts.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.cartView(c, ct))
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct, err := h.Carts.AddItem(c.Request.Context(), cart.Item{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.cartView(c, ct))
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct, err := h.Carts.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.cartView(c, ct))
}

func (h *Handler) removeCartItem(c *gin.Context) {
	ct, err := h.Carts.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.cartView(c, ct))
}

func (h *Handler) clearCart(c *gin.Context) {
	if err := h.Carts.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
