package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/middlewares"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

// ProductStore es la capacidad de lectura que consumen los handlers
type ProductStore interface {
	FindAll(ctx context.Context, q models.QueryRequest) ([]*models.Product, int64, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

// ListProducts lista productos con filtros, orden y paginación
func (h *ProductHandler) ListProducts(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordProductOperation("list", ok)
	}()

	var query models.QueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, total, err := h.store.FindAll(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to list products"})
		return
	}

	if products == nil {
		products = []*models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": models.NewPagination(query.PageValue(), query.LimitValue(), total),
	})
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordProductOperation("get", ok)
	}()

	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
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

	c.JSON(http.StatusOK, product)
}

// GetCategories lista las categorías presentes en el catálogo
func (h *ProductHandler) GetCategories(c *gin.Context) {
	defer func() {
		ok := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordProductOperation("categories", ok)
	}()

	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to list categories"})
		return
	}

	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
