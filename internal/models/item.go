package models

import "time"

// Item is a physical copy of a Bib. ID is the Alma item pid.
type Item struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	BibID string `gorm:"size:64;index;not null" json:"bib_id"`
	Bib   Bib    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bib"`

	Barcode     string `gorm:"size:64;uniqueIndex;not null" json:"barcode"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
