package models

import "time"

// Schedule представляет сеанс занятия в расписании.
type Schedule struct {
	ID       int       `json:"id"`
	ClassID  int       `json:"class_id"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // Длительность в минутах
}
