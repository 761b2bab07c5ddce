package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
	"github.com/BruksfildServices01/alma-scheduler/internal/validators"
)

func getUserByUsername(
	ctx context.Context,
	db *gorm.DB,
	username string,
) (*models.User, error) {

	var user models.User
	if err := db.WithContext(ctx).
		Where("username = ?", validators.NormalizeUsername(username)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
