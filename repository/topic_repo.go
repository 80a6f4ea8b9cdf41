package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"triviaquest/models"
)

// TopicRepository handles DB access for topics.
type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) FindAll() ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.Order("id").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *TopicRepository) FindByID(id uint) (models.Topic, error) {
	var topic models.Topic
	err := r.db.First(&topic, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Topic{}, fmt.Errorf("topic %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Topic{}, err
	}
	return topic, nil
}

func (r *TopicRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Topic{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TopicRepository) Save(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

func (r *TopicRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Topic{}, id).Error
}
