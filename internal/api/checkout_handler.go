package api

import (
	"net/http"

	"sufishine-be/internal/checkout"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) startCheckout(c *gin.Context) {
	sess, err := h.Checkout.Start(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

func (h *Handler) getCheckout(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	sess, err := h.Checkout.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) setCheckoutShipping(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var in checkout.ShippingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.Checkout.SetShipping(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type setPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

func (h *Handler) setCheckoutPayment(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req setPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.Checkout.SetPayment(c.Request.Context(), id, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) submitCheckout(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	res, err := h.Checkout.Submit(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if res.Instructions != nil {
		c.JSON(http.StatusOK, gin.H{"instructions": res.Instructions})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": res.Order})
}

type transactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (h *Handler) submitCheckoutTransaction(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Checkout.SubmitTransactionID(c.Request.Context(), id, req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": res.Order})
}
