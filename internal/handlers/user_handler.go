package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ======================================================
// LIST USERS
// ======================================================
func (h *UserHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Model(&models.User{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(username) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := q.
		Order("username ASC").
		Limit(100).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}
