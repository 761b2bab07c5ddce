package models

import "time"

// Request is one concrete interval of a Reservation.
type Request struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"index;not null" json:"reservation_id"`
	Reservation   Reservation `json:"reservation"`

	Start time.Time `gorm:"index;not null" json:"start"`
	End   time.Time `gorm:"index;not null" json:"end"`

	CreatedAt time.Time `json:"created_at"`
}
