package api

import (
	"net/http"
	"strconv"

	"sufishine-be/internal/payment"
	"sufishine-be/internal/shipping"

	"github.com/gin-gonic/gin"
)

// shippingQuote prices delivery for a given quantity without touching the
// cart, so the storefront can show charges while browsing.
func (h *Handler) shippingQuote(c *gin.Context) {
	qty, err := strconv.Atoi(c.DefaultQuery("quantity", "0"))
	if err != nil || qty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
		return
	}

	method := payment.MethodCashOnDelivery
	if q := c.Query("payment_method"); q != "" {
		m, err := payment.ParseMethod(q)
		if err != nil {
			respondError(c, err)
			return
		}
		method = m
	}

	c.JSON(http.StatusOK, gin.H{"quote": shipping.QuoteFor(qty, method)})
}

// paymentMethods lists the accepted methods with their receiving accounts,
// so the payment step can render without hardcoding them client side.
func (h *Handler) paymentMethods(c *gin.Context) {
	type methodView struct {
		Method  payment.Method            `json:"method"`
		Label   string                    `json:"label"`
		Manual  bool                      `json:"manual"`
		Account *payment.ReceivingAccount `json:"account,omitempty"`
	}

	views := make([]methodView, 0, len(payment.Methods))
	for _, m := range payment.Methods {
		v := methodView{Method: m, Label: m.Label(), Manual: m.Manual()}
		if acc, ok := payment.AccountFor(m); ok {
			v.Account = &acc
		}
		views = append(views, v)
	}
	c.JSON(http.StatusOK, gin.H{"methods": views})
}
