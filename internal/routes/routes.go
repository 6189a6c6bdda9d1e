package routes

import (
	"catalog-service/internal/handlers"
	"catalog-service/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database) {
	products := db.Collection("products")
	repo := repository.NewProductRepository(products)

	ph := handlers.NewProductHandler(repo)
	rh := handlers.NewReviewHandler(repo)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", ph.ListProducts)
		v1.GET("/products/:id", ph.GetProduct)
		v1.GET("/products/:id/reviews", rh.GetReviews)
		v1.GET("/categories", ph.GetCategories)
	}
}
