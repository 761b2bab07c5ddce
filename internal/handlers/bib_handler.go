package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type BibHandler struct {
	db *gorm.DB
}

func NewBibHandler(db *gorm.DB) *BibHandler {
	return &BibHandler{db: db}
}

// List returns bibs, optionally filtered by a title, author or MMS id
// fragment.
func (h *BibHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.Bib{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR mms_id LIKE ?",
			like, like, like,
		)
	}

	var bibs []models.Bib
	if err := q.
		Order("title ASC").
		Limit(100).
		Find(&bibs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bibs", "Could not list bibs.")
		return
	}

	httpresp.List(c, bibs)
}
