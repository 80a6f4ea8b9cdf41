package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"triviaquest/models"
)

// AnswerRepository handles DB access for answers.
type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func (r *AnswerRepository) FindAll() ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *AnswerRepository) FindByID(id uint) (models.Answer, error) {
	var answer models.Answer
	err := r.db.First(&answer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Answer{}, fmt.Errorf("answer %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Answer{}, err
	}
	return answer, nil
}

func (r *AnswerRepository) FindByQuestionID(questionID uint) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.Where("question_id = ?", questionID).Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *AnswerRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Answer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AnswerRepository) Save(answer *models.Answer) error {
	return r.db.Save(answer).Error
}

func (r *AnswerRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Answer{}, id).Error
}
