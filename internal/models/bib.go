package models

import "time"

// Bib mirrors an Alma bibliographic record. The primary key is the Alma MMS id.
type Bib struct {
	MmsID  string `gorm:"primaryKey;size:64" json:"mms_id"`
	Title  string `gorm:"size:255;not null" json:"title"`
	Author string `gorm:"size:255" json:"author"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b Bib) String() string {
	if b.Author == "" {
		return b.Title
	}
	return b.Title + " / " + b.Author
}
