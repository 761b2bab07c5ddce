package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
)

var conflictCodes = map[string]bool{
	"item_already_loaned":   true,
	"loan_already_returned": true,
}

// writeError maps use case errors to HTTP responses.
func writeError(c *gin.Context, err error, fallback string) {
	if code, ok := httperr.BusinessCode(err); ok {
		switch {
		case strings.HasSuffix(code, "_not_found"):
			httperr.NotFound(c, code, "Not found.")
		case conflictCodes[code]:
			httperr.Conflict(c, code, "Conflict.")
		default:
			httperr.BadRequest(c, code, "Invalid request.")
		}
		return
	}

	switch {
	case errors.Is(err, loan.ErrUpstream):
		httperr.BadGateway(c, "alma_unavailable", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "not_found", "Not found.")
	default:
		_ = c.Error(err)
		httperr.Write(c, http.StatusInternalServerError, fallback, "Internal error.")
	}
}
