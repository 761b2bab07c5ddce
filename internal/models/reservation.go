package models

import "time"

// Reservation groups the Requests a user made for one Bib.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BibID string `gorm:"size:64;index;not null" json:"bib_id"`
	Bib   Bib    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bib"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Requests []Request `gorm:"constraint:OnDelete:CASCADE;" json:"requests,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
