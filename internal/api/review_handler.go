package api

import (
	"net/http"

	"sufishine-be/internal/review"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listReviews(c *gin.Context) {
	productID := c.Param("id")

	reviews, err := h.Reviews.ListForProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.Reviews.SummaryForProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "summary": summary})
}

type createReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *Handler) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rv, err := h.Reviews.Create(c.Request.Context(), review.NewReviewInput{
		ProductID: c.Param("id"),
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) adminDeleteReview(c *gin.Context) {
	if err := h.Reviews.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
