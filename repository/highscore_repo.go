package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"triviaquest/models"
)

// HighscoreRepository handles DB access for highscores.
type HighscoreRepository struct {
	db *gorm.DB
}

func NewHighscoreRepository(db *gorm.DB) *HighscoreRepository {
	return &HighscoreRepository{db: db}
}

func (r *HighscoreRepository) FindAll() ([]models.Highscore, error) {
	var highscores []models.Highscore
	if err := r.db.Preload("Topic").Order("id").Find(&highscores).Error; err != nil {
		return nil, err
	}
	return highscores, nil
}

func (r *HighscoreRepository) FindByID(id uint) (models.Highscore, error) {
	var highscore models.Highscore
	err := r.db.Preload("Topic").First(&highscore, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Highscore{}, fmt.Errorf("highscore %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Highscore{}, err
	}
	return highscore, nil
}

func (r *HighscoreRepository) FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Highscore, error) {
	var highscores []models.Highscore
	err := r.db.Preload("Topic").
		Where("topic_id = ? AND difficulty = ?", topicID, difficulty).
		Order("id").
		Find(&highscores).Error
	if err != nil {
		return nil, err
	}
	return highscores, nil
}

func (r *HighscoreRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Highscore{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *HighscoreRepository) Save(highscore *models.Highscore) error {
	return r.db.Save(highscore).Error
}

func (r *HighscoreRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Highscore{}, id).Error
}
