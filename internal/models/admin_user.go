package models

import "time"

type AdminUser struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
