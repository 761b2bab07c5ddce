package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	ucRequest "github.com/BruksfildServices01/alma-scheduler/internal/usecase/request"
)

type AvailabilityHandler struct {
	check *ucRequest.CheckAvailability
	loc   *time.Location
}

func NewAvailabilityHandler(
	check *ucRequest.CheckAvailability,
	loc *time.Location,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		check: check,
		loc:   loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// ScheduleRequest is the recurrence part shared by availability checks and
// reservations.
type ScheduleRequest struct {
	MmsIDs         []string            `json:"mms_ids" binding:"required,min=1"`
	Start          string              `json:"start" binding:"required"`
	End            string              `json:"end" binding:"required"`
	EndRepeatingOn string              `json:"end_repeating_on"`
	RepeatOn       recurrence.Weekdays `json:"repeat_on"`
}

func (r ScheduleRequest) toInput(loc *time.Location) (domain.AvailabilityInput, error) {
	start, err := parseDateTime(r.Start, loc)
	if err != nil {
		return domain.AvailabilityInput{}, err
	}
	end, err := parseDateTime(r.End, loc)
	if err != nil {
		return domain.AvailabilityInput{}, err
	}
	until, err := parseOptionalDate(r.EndRepeatingOn, loc)
	if err != nil {
		return domain.AvailabilityInput{}, err
	}

	return domain.AvailabilityInput{
		MmsIDs:         r.MmsIDs,
		Start:          start,
		End:            end,
		EndRepeatingOn: until,
		RepeatOn:       r.RepeatOn,
	}, nil
}

// ======================================================
// CHECK
// ======================================================

func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in, err := req.toInput(h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	blocks, err := h.check.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "availability_failed")
		return
	}

	httpresp.List(c, blocks)
}
