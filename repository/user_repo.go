package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"triviaquest/models"
)

// UserRepository handles DB access for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
