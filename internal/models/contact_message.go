package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:150;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
