package models

// Pagination es la metadata derivada de un listado paginado.
// Nunca se persiste: se calcula en cada respuesta.
type Pagination struct {
	CurrentPage   int   `json:"current_page"`
	TotalPages    int   `json:"total_pages"`
	TotalProducts int64 `json:"total_products"`
	HasNextPage   bool  `json:"has_next_page"`
	HasPrevPage   bool  `json:"has_prev_page"`
}

// NewPagination calcula la metadata de paginación.
// totalPages = ceil(total/limit); con cero resultados hay cero páginas.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}
}
