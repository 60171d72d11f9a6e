package models

// Class представляет занятие по одному из видов спорта.
//
// CreatedBy хранит идентификатор администратора, создавшего занятие:
// именно он получает уведомление о новых записях.
type Class struct {
	ID          int    `json:"id"`
	SportID     int    `json:"sport_id"`
	SportName   string `json:"sport_name,omitempty"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // Длительность в минутах
	CreatedBy   int    `json:"created_by"`

	Schedules []*Schedule `json:"schedules,omitempty"`
}
