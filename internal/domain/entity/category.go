package entity

// Category representa una categoría de preguntas (solo lectura vía HTTP).
type Category struct {
	ID   int64
	Type string
}
