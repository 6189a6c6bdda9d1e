package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalog-service/internal/config"
	"catalog-service/internal/database"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

// Utilidad de siembra del catálogo. Sin flags inserta el dataset fijo
// (vaciando antes la colección); con -clear solo vacía.
func main() {
	clearOnly := flag.Bool("clear", false, "vaciar la colección sin sembrar")
	flag.Parse()

	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	defer client.Disconnect(context.Background())

	collection := client.Database(cfg.MongoDB).Collection("products")
	repo := repository.NewProductRepository(collection)

	ctx := context.Background()

	deleted, err := repo.DeleteAll(ctx)
	if err != nil {
		log.Fatalf("❌ Error clearing products: %v", err)
	}
	log.Printf("🗑️  Removed %d products", deleted)

	if *clearOnly {
		return
	}

	products := sampleProducts()

	valid := make(map[string]bool, len(models.Categories))
	for _, c := range models.Categories {
		valid[c] = true
	}
	for _, p := range products {
		if !valid[p.Category] {
			log.Fatalf("❌ Unknown category %q in seed data", p.Category)
		}
	}

	if err := repo.InsertMany(ctx, products); err != nil {
		log.Fatalf("❌ Error seeding products: %v", err)
	}
	log.Printf("🌱 Seeded %d products", len(products))
}

func price(v float64) *float64 {
	return &v
}

func sku(category string) string {
	return strings.ToUpper(category[:3]) + "-" + uuid.NewString()[:8]
}

func sampleProducts() []*models.Product {
	now := time.Now()

	seed := []struct {
		name          string
		description   string
		price         float64
		originalPrice *float64
		category      string
		brand         string
		rating        float64
		reviewCount   int
		stock         int
		tags          []string
	}{
		{"UltraBook Pro 14", "Lightweight 14-inch laptop with 16GB RAM and a full-day battery", 1299.99, price(1499.99), "laptops", "Novatech", 4.6, 218, 12, []string{"ultrabook", "portable"}},
		{"Gamer X15", "15-inch gaming laptop with dedicated GPU and 144Hz display", 1799.00, nil, "laptops", "Hyperion", 4.4, 167, 5, []string{"gaming", "rgb"}},
		{"EcoBook Air", "Budget laptop for browsing and office work", 549.50, price(649.00), "laptops", "Novatech", 4.0, 94, 0, []string{"budget", "office"}},
		{"Nova Phone 12", "6.1-inch smartphone with triple camera and 5G", 899.00, nil, "smartphones", "Nova", 4.7, 532, 40, []string{"5g", "camera"}},
		{"Nova Phone 12 Mini", "Compact smartphone with flagship performance", 699.00, price(749.00), "smartphones", "Nova", 4.5, 301, 25, []string{"5g", "compact"}},
		{"Pixelon 8", "Clean Android experience with outstanding night photography", 799.00, nil, "smartphones", "Pixelon", 4.6, 412, 18, []string{"android", "camera"}},
		{"TabMax 11", "11-inch tablet with stylus support for creators", 649.00, price(699.00), "tablets", "Novatech", 4.3, 128, 9, []string{"stylus", "creators"}},
		{"TabLite 8", "8-inch tablet for reading and streaming", 229.00, nil, "tablets", "Nova", 4.1, 87, 31, []string{"reading", "budget"}},
		{"SilentBeat ANC", "Over-ear headphones with active noise cancelling", 349.00, price(399.00), "headphones", "AudioCore", 4.8, 764, 50, []string{"anc", "wireless"}},
		{"SportBuds Free", "True wireless earbuds with IP67 rating", 129.00, nil, "headphones", "AudioCore", 4.2, 243, 0, []string{"wireless", "sport"}},
		{"ProShot M50", "Mirrorless camera with 4K video and in-body stabilization", 1450.00, nil, "cameras", "Optix", 4.7, 198, 7, []string{"mirrorless", "4k"}},
		{"ActionCam Go", "Rugged action camera, waterproof to 10m", 299.00, price(349.00), "cameras", "Optix", 4.3, 156, 22, []string{"action", "waterproof"}},
		{"PowerHub 65W", "Compact GaN charger with three ports", 59.90, nil, "accessories", "Voltix", 4.5, 389, 120, []string{"charger", "gan"}},
		{"DeskDock Pro", "USB-C docking station with dual HDMI", 189.00, price(219.00), "accessories", "Voltix", 4.4, 142, 15, []string{"usb-c", "dock"}},
	}

	products := make([]*models.Product, 0, len(seed))
	for i, s := range seed {
		products = append(products, &models.Product{
			SKU:           sku(s.category),
			Name:          s.name,
			Description:   s.description,
			Price:         s.price,
			OriginalPrice: s.originalPrice,
			Category:      s.category,
			Brand:         s.brand,
			Rating:        s.rating,
			ReviewCount:   s.reviewCount,
			Stock:         s.stock,
			Tags:          s.tags,
			CreatedAt:     now.AddDate(0, 0, -i*7),
		})
	}

	return products
}
