package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"triviaquest/models"
)

// QuestionRepository handles DB access for questions.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) FindAll() ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Preload("Topic").Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(id uint) (models.Question, error) {
	var question models.Question
	err := r.db.Preload("Topic").First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Question{}, fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (r *QuestionRepository) FindByTopicID(topicID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Preload("Topic").Where("topic_id = ?", topicID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Preload("Topic").
		Where("topic_id = ? AND difficulty = ?", topicID, difficulty).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *QuestionRepository) Save(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *QuestionRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}
