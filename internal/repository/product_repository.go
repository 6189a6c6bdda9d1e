package repository

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-service/internal/models"
)

// Errores que el handler traduce a códigos HTTP
var (
	ErrInvalidID    = errors.New("invalid product ID")
	ErrNotFound     = errors.New("product not found")
	ErrInvalidQuery = errors.New("invalid query parameters")
)

// Límites de paginación; valores fuera de rango se rechazan, no se recortan
const (
	maxLimit = 100
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// buildFilter arma el filtro bson a partir de los parámetros presentes.
// Cada dimensión es opcional y todas se combinan con AND. La búsqueda
// genérica es un OR por regex sobre name/description/category; no se usa
// índice de texto (ver DESIGN.md).
func buildFilter(q models.QueryRequest) bson.M {
	filter := bson.M{}

	if q.Category != "" {
		filter["category"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Category),
			Options: "i",
		}
	}

	price := bson.M{}
	if q.MinPrice != nil {
		price["$gte"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		price["$lte"] = *q.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if q.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *q.MinRating}
	}

	if q.Search != "" {
		re := primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Search),
			Options: "i",
		}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"category": re},
		}
	}

	return filter
}

// Campos permitidos para ordenar y su nombre en el documento
var sortFields = map[string]string{
	"price":      "price",
	"rating":     "rating",
	"name":       "name",
	"created_at": "created_at",
}

// sortSpec construye el ordenamiento con _id ascendente como desempate
// estable, para que la paginación no dependa del orden incidental del motor
func sortSpec(q models.QueryRequest) (bson.D, error) {
	field, ok := sortFields[q.SortByValue()]
	if !ok {
		return nil, ErrInvalidQuery
	}

	dir := -1
	if q.SortOrderValue() == "asc" {
		dir = 1
	}

	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}, nil
}

// FindAll lista productos filtrados, ordenados y paginados, junto con el
// total de coincidencias sin paginar
func (r *ProductRepository) FindAll(ctx context.Context, q models.QueryRequest) ([]*models.Product, int64, error) {
	limit := q.LimitValue()
	page := q.PageValue()

	if limit < 1 || limit > maxLimit || page < 1 {
		return nil, 0, ErrInvalidQuery
	}

	sortDoc, err := sortSpec(q)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := buildFilter(q)

	// Contar total en paralelo
	totalCh := make(chan int64, 1)
	errCh := make(chan error, 1)

	go func() {
		total, err := r.collection.CountDocuments(ctx, filter)
		if err != nil {
			errCh <- err
			return
		}
		totalCh <- total
	}()

	findOptions := options.Find()
	findOptions.SetSkip(int64((page - 1) * limit))
	findOptions.SetLimit(int64(limit))
	findOptions.SetSort(sortDoc)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	for _, p := range products {
		p.InStock = p.Stock > 0
	}

	// Esperar el conteo
	var total int64
	select {
	case total = <-totalCh:
	case err := <-errCh:
		return nil, 0, err
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	}

	return products, total, nil
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product.InStock = product.Stock > 0
	return &product, nil
}

// Categories retorna las categorías distintas presentes en la colección
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)

	return categories, nil
}

// InsertMany carga productos; lo usa el seeder, no la API
func (r *ProductRepository) InsertMany(ctx context.Context, products []*models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		docs = append(docs, p)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// DeleteAll vacía la colección; lo usa el seeder, no la API
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
