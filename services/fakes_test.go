package services

import (
	"fmt"
	"sort"

	"triviaquest/models"
)

// In-memory repository fakes mirroring the gorm-backed implementations,
// including their not-found wrapping.

type fakeTopicRepo struct {
	items  map[uint]models.Topic
	nextID uint
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{items: make(map[uint]models.Topic)}
}

func (r *fakeTopicRepo) FindAll() ([]models.Topic, error) {
	topics := make([]models.Topic, 0, len(r.items))
	for _, t := range r.items {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func (r *fakeTopicRepo) FindByID(id uint) (models.Topic, error) {
	topic, ok := r.items[id]
	if !ok {
		return models.Topic{}, fmt.Errorf("topic %d: %w", id, models.ErrNotFound)
	}
	return topic, nil
}

func (r *fakeTopicRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeTopicRepo) Save(topic *models.Topic) error {
	if topic.ID == 0 {
		r.nextID++
		topic.ID = r.nextID
	}
	r.items[topic.ID] = *topic
	return nil
}

func (r *fakeTopicRepo) DeleteByID(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeQuestionRepo struct {
	items  map[uint]models.Question
	nextID uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{items: make(map[uint]models.Question)}
}

func (r *fakeQuestionRepo) FindAll() ([]models.Question, error) {
	questions := make([]models.Question, 0, len(r.items))
	for _, q := range r.items {
		questions = append(questions, q)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (models.Question, error) {
	question, ok := r.items[id]
	if !ok {
		return models.Question{}, fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}
	return question, nil
}

func (r *fakeQuestionRepo) FindByTopicID(topicID uint) ([]models.Question, error) {
	all, _ := r.FindAll()
	var questions []models.Question
	for _, q := range all {
		if q.TopicID == topicID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (r *fakeQuestionRepo) FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Question, error) {
	all, _ := r.FindByTopicID(topicID)
	var questions []models.Question
	for _, q := range all {
		if q.Difficulty == difficulty {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (r *fakeQuestionRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeQuestionRepo) Save(question *models.Question) error {
	if question.ID == 0 {
		r.nextID++
		question.ID = r.nextID
	}
	r.items[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) DeleteByID(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeAnswerRepo struct {
	items  map[uint]models.Answer
	nextID uint
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{items: make(map[uint]models.Answer)}
}

func (r *fakeAnswerRepo) FindAll() ([]models.Answer, error) {
	answers := make([]models.Answer, 0, len(r.items))
	for _, a := range r.items {
		answers = append(answers, a)
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })
	return answers, nil
}

func (r *fakeAnswerRepo) FindByID(id uint) (models.Answer, error) {
	answer, ok := r.items[id]
	if !ok {
		return models.Answer{}, fmt.Errorf("answer %d: %w", id, models.ErrNotFound)
	}
	return answer, nil
}

func (r *fakeAnswerRepo) FindByQuestionID(questionID uint) ([]models.Answer, error) {
	all, _ := r.FindAll()
	var answers []models.Answer
	for _, a := range all {
		if a.QuestionID == questionID {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

func (r *fakeAnswerRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeAnswerRepo) Save(answer *models.Answer) error {
	if answer.ID == 0 {
		r.nextID++
		answer.ID = r.nextID
	}
	r.items[answer.ID] = *answer
	return nil
}

func (r *fakeAnswerRepo) DeleteByID(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeHighscoreRepo struct {
	items  map[uint]models.Highscore
	nextID uint
}

func newFakeHighscoreRepo() *fakeHighscoreRepo {
	return &fakeHighscoreRepo{items: make(map[uint]models.Highscore)}
}

func (r *fakeHighscoreRepo) FindAll() ([]models.Highscore, error) {
	highscores := make([]models.Highscore, 0, len(r.items))
	for _, h := range r.items {
		highscores = append(highscores, h)
	}
	sort.Slice(highscores, func(i, j int) bool { return highscores[i].ID < highscores[j].ID })
	return highscores, nil
}

func (r *fakeHighscoreRepo) FindByID(id uint) (models.Highscore, error) {
	highscore, ok := r.items[id]
	if !ok {
		return models.Highscore{}, fmt.Errorf("highscore %d: %w", id, models.ErrNotFound)
	}
	return highscore, nil
}

func (r *fakeHighscoreRepo) FindByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Highscore, error) {
	all, _ := r.FindAll()
	var highscores []models.Highscore
	for _, h := range all {
		if h.TopicID == topicID && h.Difficulty == difficulty {
			highscores = append(highscores, h)
		}
	}
	return highscores, nil
}

func (r *fakeHighscoreRepo) ExistsByID(id uint) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeHighscoreRepo) Save(highscore *models.Highscore) error {
	if highscore.ID == 0 {
		r.nextID++
		highscore.ID = r.nextID
	}
	r.items[highscore.ID] = *highscore
	return nil
}

func (r *fakeHighscoreRepo) DeleteByID(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeUserRepo struct {
	items  map[string]models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[string]models.User)}
}

func (r *fakeUserRepo) FindByUsername(username string) (models.User, error) {
	user, ok := r.items[username]
	if !ok {
		return models.User{}, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	return user, nil
}

func (r *fakeUserRepo) Save(user *models.User) error {
	if user.ID == 0 {
		r.nextID++
		user.ID = r.nextID
	}
	r.items[user.Username] = *user
	return nil
}
