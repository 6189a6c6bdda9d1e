package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/middlewares"
	"catalog-service/internal/repository"
	"catalog-service/internal/reviews"
)

const (
	defaultReviewLimit = 5
	maxReviewLimit     = 100
)

type ReviewHandler struct {
	store ProductStore
}

func NewReviewHandler(store ProductStore) *ReviewHandler {
	return &ReviewHandler{
		store: store,
	}
}

// GetReviews genera las reseñas sintéticas de un producto. El producto debe
// existir; su nombre alimenta las plantillas de comentario.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordReviewOperation("generate", ok)
	}()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultReviewLimit)))
	if err != nil || limit < 1 || limit > maxReviewLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	// El rating fuera de 1..5 no es error: el generador retorna vacío
	var ratingFilter *int
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
			return
		}
		ratingFilter = &rating
	}

	productID := c.Param("id")
	product, err := h.store.FindByID(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to get product"})
		}
		return
	}

	result := reviews.Generate(productID, product.Name, limit, ratingFilter, time.Now())

	c.JSON(http.StatusOK, gin.H{"reviews": result})
}
