package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories es el conjunto fijo de categorías del catálogo
var Categories = []string{
	"laptops",
	"smartphones",
	"tablets",
	"headphones",
	"cameras",
	"accessories",
}

// Product representa un producto en el catálogo
type Product struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SKU           string             `json:"sku" bson:"sku"`
	Name          string             `json:"name" bson:"name" binding:"required"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Price         float64            `json:"price" bson:"price" binding:"gte=0"`
	OriginalPrice *float64           `json:"original_price,omitempty" bson:"original_price,omitempty"`
	Category      string             `json:"category" bson:"category" binding:"required"`
	Brand         string             `json:"brand" bson:"brand"`
	Rating        float64            `json:"rating" bson:"rating" binding:"gte=0,lte=5"`
	ReviewCount   int                `json:"review_count" bson:"review_count"`
	Stock         int                `json:"stock" bson:"stock"`
	InStock       bool               `json:"in_stock" bson:"-"`
	Tags          []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}
