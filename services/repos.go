package services

import "triviaquest/models"

// Persistence interfaces consumed by the services. The repository package
// provides the gorm-backed implementations; tests substitute in-memory fakes.

type TopicRepository interface {
	FindAll() ([]models.Topic, error)
	FindByID(id uint) (models.Topic, error)
	ExistsByID(id uint) (bool, error)
	Save(topic *models.Topic) error
	DeleteByID(id uint) error
}

type QuestionRepository interface {
	FindAll() ([]models.Question, error)
	FindByID(id uint) (models.Question, error)
	FindByTopicID(topicID uint) ([]models.Question, error)
	FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Question, error)
	ExistsByID(id uint) (bool, error)
	Save(question *models.Question) error
	DeleteByID(id uint) error
}

type AnswerRepository interface {
	FindAll() ([]models.Answer, error)
	FindByID(id uint) (models.Answer, error)
	FindByQuestionID(questionID uint) ([]models.Answer, error)
	ExistsByID(id uint) (bool, error)
	Save(answer *models.Answer) error
	DeleteByID(id uint) error
}

type HighscoreRepository interface {
	FindAll() ([]models.Highscore, error)
	FindByID(id uint) (models.Highscore, error)
	FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Highscore, error)
	ExistsByID(id uint) (bool, error)
	Save(highscore *models.Highscore) error
	DeleteByID(id uint) error
}

type UserRepository interface {
	FindByUsername(username string) (models.User, error)
	Save(user *models.User) error
}
