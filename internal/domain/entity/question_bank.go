package entity

// QuestionBank conjunto inicial de categorías y preguntas para poblar un almacén vacío.
type QuestionBank struct {
	Categories []Category
	Questions  []Question
}
