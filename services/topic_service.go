package services

import (
	"fmt"

	"triviaquest/models"
)

// TopicService manages topics and derives the per-topic difficulty listing
// used by the start screen.
type TopicService struct {
	topics    TopicRepository
	questions QuestionRepository
	answers   AnswerRepository
}

func NewTopicService(topics TopicRepository, questions QuestionRepository, answers AnswerRepository) *TopicService {
	return &TopicService{topics: topics, questions: questions, answers: answers}
}

type UpdateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AllTopics lists every topic together with the distinct difficulties of its
// playable questions, in the order the difficulties are first encountered.
// Topics without playable questions are listed with an empty difficulty set.
func (s *TopicService) AllTopics() ([]models.TopicInfo, error) {
	topics, err := s.topics.FindAll()
	if err != nil {
		return nil, err
	}

	infos := make([]models.TopicInfo, 0, len(topics))
	for _, topic := range topics {
		questions, err := s.questions.FindByTopicID(topic.ID)
		if err != nil {
			return nil, err
		}

		difficulties := []models.Difficulty{}
		seen := make(map[models.Difficulty]bool)
		for _, question := range questions {
			answers, err := s.answers.FindByQuestionID(question.ID)
			if err != nil {
				return nil, err
			}
			if len(answers) < models.QuizAnswerCount {
				continue
			}
			if !seen[question.Difficulty] {
				seen[question.Difficulty] = true
				difficulties = append(difficulties, question.Difficulty)
			}
		}

		infos = append(infos, models.TopicInfo{
			ID:           topic.ID,
			Name:         topic.Name,
			Description:  topic.Description,
			Difficulties: difficulties,
		})
	}

	return infos, nil
}

func (s *TopicService) TopicByID(id uint) (models.Topic, error) {
	return s.topics.FindByID(id)
}

func (s *TopicService) CreateTopic(topic *models.Topic) error {
	if topic.Name == "" {
		return fmt.Errorf("topic name must be defined: %w", models.ErrInvalidRequest)
	}
	return s.topics.Save(topic)
}

func (s *TopicService) UpdateTopic(id uint, req UpdateTopicRequest) (models.Topic, error) {
	topic, err := s.topics.FindByID(id)
	if err != nil {
		return models.Topic{}, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return models.Topic{}, fmt.Errorf("topic name must not be empty: %w", models.ErrInvalidRequest)
		}
		topic.Name = *req.Name
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}

	if err := s.topics.Save(&topic); err != nil {
		return models.Topic{}, err
	}
	return topic, nil
}

// DeleteTopic removes a topic. Topics still referenced by questions cannot be
// deleted.
func (s *TopicService) DeleteTopic(id uint) error {
	exists, err := s.topics.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("topic %d: %w", id, models.ErrNotFound)
	}

	questions, err := s.questions.FindByTopicID(id)
	if err != nil {
		return err
	}
	if len(questions) > 0 {
		return fmt.Errorf("topic %d still has questions: %w", id, models.ErrConstraintViolation)
	}

	return s.topics.DeleteByID(id)
}
