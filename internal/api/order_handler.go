package api

import (
	"net/http"

	"sufishine-be/internal/order"
	"sufishine-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type trackRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// trackOrder is the guest-friendly lookup: order number plus the email the
// order was placed under. No authentication involved.
func (h *Handler) trackOrder(c *gin.Context) {
	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.Track(c.Request.Context(), req.OrderNumber, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

type attachTransactionRequest struct {
	OrderNumber   string `json:"order_number" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (h *Handler) attachTransaction(c *gin.Context) {
	var req attachTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.AttachTransactionID(c.Request.Context(),
		req.OrderNumber, req.Email, req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) myOrders(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orders, err := h.Orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) adminListOrders(c *gin.Context) {
	var filter order.ListFilter
	if q := c.Query("status"); q != "" {
		status, err := order.ParseStatus(q)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Status = &status
	}
	if q := c.Query("search"); q != "" {
		filter.Search = &q
	}

	orders, err := h.Orders.AdminList(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) adminGetOrder(c *gin.Context) {
	o, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) adminUpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) adminUpdatePaymentStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := order.ParsePaymentStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.Orders.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

type trackingRequest struct {
	TrackingID string `json:"tracking_id" binding:"required"`
}

func (h *Handler) adminAssignTracking(c *gin.Context) {
	var req trackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.AssignTracking(c.Request.Context(), c.Param("id"), req.TrackingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) adminUpdateDeliveryNotes(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.UpdateDeliveryNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": o})
}

func (h *Handler) adminDeleteOrder(c *gin.Context) {
	if err := h.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
