package models

// Sport представляет вид спорта из каталога комплекса.
type Sport struct {
	ID   int    `json:"id"`
	Name string `json:"name"` // Название вида спорта (уникальное)
}
