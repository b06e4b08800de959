package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	Date        string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Time        string `gorm:"size:5;not null" json:"time"`  // HH:MM
	MeetingType string `gorm:"size:50;not null" json:"meeting_type"`

	Message string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
