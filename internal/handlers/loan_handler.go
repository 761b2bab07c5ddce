package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/alma-scheduler/internal/middleware"
	ucLoan "github.com/BruksfildServices01/alma-scheduler/internal/usecase/loan"
)

type LoanHandler struct {
	create   *ucLoan.CreateLoan
	ret      *ucLoan.ReturnLoan
	delete   *ucLoan.DeleteLoan
	listOpen *ucLoan.ListOpenLoans
}

func NewLoanHandler(
	create *ucLoan.CreateLoan,
	ret *ucLoan.ReturnLoan,
	del *ucLoan.DeleteLoan,
	listOpen *ucLoan.ListOpenLoans,
) *LoanHandler {
	return &LoanHandler{
		create:   create,
		ret:      ret,
		delete:   del,
		listOpen: listOpen,
	}
}

type CreateLoanRequest struct {
	Username string `json:"username" binding:"required"`
	ItemID   string `json:"item_id" binding:"required"`
}

func (h *LoanHandler) ListOpen(c *gin.Context) {
	loans, err := h.listOpen.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_list_loans")
		return
	}

	httpresp.List(c, loans)
}

func (h *LoanHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	l, err := h.create.Execute(c.Request.Context(), ucLoan.CreateLoanInput{
		ActorID:  actorID,
		Username: req.Username,
		ItemID:   req.ItemID,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_loan")
		return
	}

	c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) Return(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	l, err := h.ret.Execute(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		writeError(c, err, "failed_to_return_loan")
		return
	}

	httpresp.OK(c, l)
}

func (h *LoanHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.delete.Execute(c.Request.Context(), actorID, c.Param("id")); err != nil {
		writeError(c, err, "failed_to_delete_loan")
		return
	}

	c.Status(http.StatusNoContent)
}
