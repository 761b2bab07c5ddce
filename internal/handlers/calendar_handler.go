package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/alma-scheduler/internal/ics"
	ucCalendar "github.com/BruksfildServices01/alma-scheduler/internal/usecase/calendar"
)

type CalendarHandler struct {
	build *ucCalendar.BuildCalendar
	now   func() time.Time
}

// NewCalendarHandler stamps exported feeds with now.
func NewCalendarHandler(build *ucCalendar.BuildCalendar, now func() time.Time) *CalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &CalendarHandler{build: build, now: now}
}

// Show renders one page of the calendar. A missing or non-integer page is
// page 0.
func (h *CalendarHandler) Show(c *gin.Context) {
	view, err := h.build.Execute(c.Request.Context(), parsePage(c.Query("page")))
	if err != nil {
		writeError(c, err, "calendar_failed")
		return
	}

	httpresp.OK(c, view)
}

// ICS exports the same page as an iCalendar feed.
func (h *CalendarHandler) ICS(c *gin.Context) {
	view, err := h.build.Execute(c.Request.Context(), parsePage(c.Query("page")))
	if err != nil {
		writeError(c, err, "calendar_failed")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics.Export(view.Calendar, h.now().UTC())))
}

func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return page
}
