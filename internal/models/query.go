package models

// Valores por defecto de listado
const (
	DefaultLimit     = 20
	DefaultPage      = 1
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
)

// QueryRequest agrupa los parámetros opcionales de filtrado, orden y paginación.
// Limit y Page son punteros para distinguir "ausente" (se aplica el default)
// de un cero explícito, que debe rechazarse en la validación.
type QueryRequest struct {
	Category  string   `form:"category"`
	MinPrice  *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"max_price" binding:"omitempty,gte=0"`
	MinRating *float64 `form:"min_rating" binding:"omitempty,gte=0,lte=5"`
	Search    string   `form:"search"`
	SortBy    string   `form:"sort_by" binding:"omitempty,oneof=price rating name created_at"`
	SortOrder string   `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Limit     *int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Page      *int     `form:"page" binding:"omitempty,min=1"`
}

// LimitValue retorna el límite pedido o el default
func (q *QueryRequest) LimitValue() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	return *q.Limit
}

// PageValue retorna la página pedida o el default
func (q *QueryRequest) PageValue() int {
	if q.Page == nil {
		return DefaultPage
	}
	return *q.Page
}

// SortByValue retorna el campo de orden pedido o el default
func (q *QueryRequest) SortByValue() string {
	if q.SortBy == "" {
		return DefaultSortBy
	}
	return q.SortBy
}

// SortOrderValue retorna la dirección de orden pedida o el default
func (q *QueryRequest) SortOrderValue() string {
	if q.SortOrder == "" {
		return DefaultSortOrder
	}
	return q.SortOrder
}
