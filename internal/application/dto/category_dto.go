package dto

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoryListResponse respuesta de GET /categories.
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}
