package entity

// Question representa una pregunta de trivia con su respuesta.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64 // FK a categories.id
	Difficulty int   // 1..5
}
