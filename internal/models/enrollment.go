package models

import "time"

// Enrollment представляет запись пользователя на занятие.
type Enrollment struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	UserEmail  string    `json:"user_email,omitempty"`
	ClassID    int       `json:"class_id"`
	ClassDesc  string    `json:"class_description,omitempty"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// UserEnrolledEvent — событие, публикуемое в RabbitMQ после успешной
// записи пользователя на занятие. AdminID — владелец занятия.
type UserEnrolledEvent struct {
	EventID   string `json:"event_id"`
	UserEmail string `json:"user_email"`
	ClassDesc string `json:"class_description"`
	AdminID   int    `json:"admin_id"`
}

// EnrollmentNotification — уведомление, доставляемое владельцу занятия
// по WebSocket. Message — готовый текст для отображения.
type EnrollmentNotification struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}
