package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name     string `gorm:"size:100" json:"name"`
	Role     string `gorm:"size:20;default:'patron'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
