package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

type storeMock struct{ mock.Mock }

func (m *storeMock) FindAll(ctx context.Context, q models.QueryRequest) ([]*models.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*models.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *storeMock) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *storeMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func newTestRouter(store ProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ph := NewProductHandler(store)
	rh := NewReviewHandler(store)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", ph.ListProducts)
		v1.GET("/products/:id", ph.GetProduct)
		v1.GET("/products/:id/reviews", rh.GetReviews)
		v1.GET("/categories", ph.GetCategories)
	}

	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListProductsSuccess(t *testing.T) {
	store := new(storeMock)
	items := []*models.Product{
		{Name: "UltraBook Pro 14", Category: "laptops", Price: 1299.99},
		{Name: "Gamer X15", Category: "laptops", Price: 1799.00},
	}
	store.On("FindAll", mock.Anything, mock.Anything).Return(items, int64(42), nil)

	w := doRequest(newTestRouter(store), "/v1/products?category=laptops")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Products   []models.Product  `json:"products"`
		Pagination models.Pagination `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Len(t, body.Products, 2)
	assert.Equal(t, 1, body.Pagination.CurrentPage)
	assert.Equal(t, 3, body.Pagination.TotalPages) // ceil(42/20)
	assert.Equal(t, int64(42), body.Pagination.TotalProducts)
	assert.True(t, body.Pagination.HasNextPage)
	assert.False(t, body.Pagination.HasPrevPage)

	store.AssertExpectations(t)
}

func TestListProductsBindsFilters(t *testing.T) {
	store := new(storeMock)
	store.On("FindAll", mock.Anything, mock.MatchedBy(func(q models.QueryRequest) bool {
		return q.Category == "laptops" &&
			q.MinPrice != nil && *q.MinPrice == 500 &&
			q.MaxPrice != nil && *q.MaxPrice == 1500 &&
			q.SortByValue() == "created_at" &&
			q.SortOrderValue() == "desc"
	})).Return(nil, int64(0), nil)

	w := doRequest(newTestRouter(store), "/v1/products?category=laptops&min_price=500&max_price=1500")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"products":[]`)
	store.AssertExpectations(t)
}

func TestListProductsRejectsInvalidParams(t *testing.T) {
	paths := []string{
		"/v1/products?limit=101",
		"/v1/products?limit=0",
		"/v1/products?page=0",
		"/v1/products?sort_by=stock",
		"/v1/products?sort_order=sideways",
		"/v1/products?min_rating=7",
	}

	for _, path := range paths {
		store := new(storeMock)
		w := doRequest(newTestRouter(store), path)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		store.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	}
}

func TestListProductsBoundaryLimit(t *testing.T) {
	store := new(storeMock)
	store.On("FindAll", mock.Anything, mock.MatchedBy(func(q models.QueryRequest) bool {
		return q.LimitValue() == 100
	})).Return(nil, int64(0), nil)

	w := doRequest(newTestRouter(store), "/v1/products?limit=100")

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestListProductsStoreUnavailable(t *testing.T) {
	store := new(storeMock)
	store.On("FindAll", mock.Anything, mock.Anything).Return(nil, int64(0), assert.AnError)

	w := doRequest(newTestRouter(store), "/v1/products")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetProductByID(t *testing.T) {
	store := new(storeMock)
	product := &models.Product{Name: "Nova Phone 12", Category: "smartphones", Stock: 3, InStock: true}
	store.On("FindByID", mock.Anything, "abc123").Return(product, nil)

	w := doRequest(newTestRouter(store), "/v1/products/abc123")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Nova Phone 12"`)
	assert.Contains(t, w.Body.String(), `"in_stock":true`)
}

func TestGetProductErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no encontrado", repository.ErrNotFound, http.StatusNotFound},
		{"id inválido", repository.ErrInvalidID, http.StatusBadRequest},
		{"store caído", assert.AnError, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(storeMock)
			store.On("FindByID", mock.Anything, "x").Return(nil, tc.err)

			w := doRequest(newTestRouter(store), "/v1/products/x")
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestGetCategories(t *testing.T) {
	store := new(storeMock)
	store.On("Categories", mock.Anything).Return([]string{"cameras", "laptops"}, nil)

	w := doRequest(newTestRouter(store), "/v1/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"categories":["cameras","laptops"]`)
}

func TestGetReviewsSuccess(t *testing.T) {
	store := new(storeMock)
	productID := "64a1f0c3d2e4b5a6abcdef01"
	store.On("FindByID", mock.Anything, productID).
		Return(&models.Product{Name: "Laptop"}, nil)

	w := doRequest(newTestRouter(store), "/v1/products/"+productID+"/reviews?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reviews []models.Review `json:"reviews"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Reviews, 5)
	for i, r := range body.Reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Comment)
		assert.True(t, r.Date.Before(time.Now().Add(time.Minute)))
		assert.Contains(t, r.ID, productID)
		assert.Equal(t, i, int(r.ID[len(r.ID)-1]-'0'))
	}
}

func TestGetReviewsWithRatingFilter(t *testing.T) {
	store := new(storeMock)
	productID := "64a1f0c3d2e4b5a6abcdef01"
	store.On("FindByID", mock.Anything, productID).
		Return(&models.Product{Name: "Laptop"}, nil)

	w := doRequest(newTestRouter(store), "/v1/products/"+productID+"/reviews?limit=3&rating=5")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Reviews []models.Review `json:"reviews"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, r := range body.Reviews {
		assert.Equal(t, 5, r.Rating)
	}
}

func TestGetReviewsProductNotFound(t *testing.T) {
	store := new(storeMock)
	store.On("FindByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	w := doRequest(newTestRouter(store), "/v1/products/missing/reviews")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReviewsInvalidParams(t *testing.T) {
	paths := []string{
		"/v1/products/abc/reviews?limit=0",
		"/v1/products/abc/reviews?limit=101",
		"/v1/products/abc/reviews?limit=many",
		"/v1/products/abc/reviews?rating=five",
	}

	for _, path := range paths {
		store := new(storeMock)
		w := doRequest(newTestRouter(store), path)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		store.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	}
}
