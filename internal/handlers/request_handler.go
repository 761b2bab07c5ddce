package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/alma-scheduler/internal/dto"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/alma-scheduler/internal/middleware"
	ucRequest "github.com/BruksfildServices01/alma-scheduler/internal/usecase/request"
)

// ======================================================
// HANDLER
// ======================================================

type RequestHandler struct {
	create      *ucRequest.CreateReservation
	delete      *ucRequest.DeleteRequest
	listForUser *ucRequest.ListUserRequests
	loc         *time.Location
}

func NewRequestHandler(
	create *ucRequest.CreateReservation,
	del *ucRequest.DeleteRequest,
	listForUser *ucRequest.ListUserRequests,
	loc *time.Location,
) *RequestHandler {
	return &RequestHandler{
		create:      create,
		delete:      del,
		listForUser: listForUser,
		loc:         loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ScheduleRequest
	Username string `json:"username" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RequestHandler) CreateReservation(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in, err := req.toInput(h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	reservations, err := h.create.Execute(c.Request.Context(), ucRequest.CreateReservationInput{
		ActorID:        actorID,
		Username:       req.Username,
		MmsIDs:         in.MmsIDs,
		Start:          in.Start,
		End:            in.End,
		EndRepeatingOn: in.EndRepeatingOn,
		RepeatOn:       in.RepeatOn,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_reservation")
		return
	}

	c.JSON(http.StatusCreated, reservations)
}

// ======================================================
// DELETE
// ======================================================

func (h *RequestHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid request id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), actorID, uint(id)); err != nil {
		writeError(c, err, "failed_to_delete_request")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST FOR USER
// ======================================================

func (h *RequestHandler) ListForUser(c *gin.Context) {
	requests, err := h.listForUser.Execute(c.Request.Context(), c.Query("username"))
	if err != nil {
		writeError(c, err, "failed_to_list_requests")
		return
	}

	out := make([]dto.UserRequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, dto.NewUserRequestDTO(r, h.loc))
	}

	httpresp.List(c, out)
}
