package dto

import (
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type UserRequestDTO struct {
	ID            uint      `json:"id"`
	ReservationID uint      `json:"reservation_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	MmsID         string    `json:"mms_id"`
	BibName       string    `json:"bib_name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
}

// NewUserRequestDTO flattens a request with its reservation, bib and user
// loaded. Times are rendered in loc.
func NewUserRequestDTO(r models.Request, loc *time.Location) UserRequestDTO {
	return UserRequestDTO{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		Start:         r.Start.In(loc),
		End:           r.End.In(loc),
		MmsID:         r.Reservation.BibID,
		BibName:       r.Reservation.Bib.String(),
		Username:      r.Reservation.User.Username,
		Email:         r.Reservation.User.Email,
	}
}
