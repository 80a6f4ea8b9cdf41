package services

import (
	"fmt"
	"log"

	"triviaquest/models"
)

// QuestionService manages questions and runs the quiz round logic: random
// selection of unseen questions, answer verification and the 50/50 joker.
// Round state (seen question IDs, running score) is held by the client; every
// call here is stateless.
type QuestionService struct {
	questions  QuestionRepository
	topics     TopicRepository
	answers    AnswerRepository
	highscores HighscoreRepository
	rng        Rand
}

func NewQuestionService(questions QuestionRepository, topics TopicRepository, answers AnswerRepository, highscores HighscoreRepository, rng Rand) *QuestionService {
	return &QuestionService{
		questions:  questions,
		topics:     topics,
		answers:    answers,
		highscores: highscores,
		rng:        rng,
	}
}

// QuizAnswer is an answer as presented to a player. It deliberately carries
// no correctness flag.
type QuizAnswer struct {
	ID   uint   `json:"id"`
	Text string `json:"answer"`
}

// QuizQuestion is a question as presented to a player, with its answers in
// shuffled order.
type QuizQuestion struct {
	ID         uint              `json:"id"`
	Text       string            `json:"question"`
	Difficulty models.Difficulty `json:"difficulty"`
	Topic      models.Topic      `json:"topic"`
	Answers    []QuizAnswer      `json:"answers"`
}

// CorrectQuestion is the outcome of an answer check. Info is included whether
// or not the answer was correct; it is shown to the player after every answer.
type CorrectQuestion struct {
	ID              uint   `json:"id"`
	Info            string `json:"info"`
	Correct         bool   `json:"correct"`
	CorrectAnswerID uint   `json:"correct_answer_id"`
}

type CheckAnswerRequest struct {
	AnswerID   *uint  `json:"answer_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
}

type UpdateQuestionRequest struct {
	Text       *string            `json:"question"`
	Info       *string            `json:"info"`
	Difficulty *models.Difficulty `json:"difficulty"`
	TopicID    *uint              `json:"topic_id"`
}

// maxInfoLength caps the explanatory text stored with a question.
const maxInfoLength = 2000

func (s *QuestionService) AllQuestions() ([]models.Question, error) {
	return s.questions.FindAll()
}

func (s *QuestionService) QuestionByID(id uint) (models.Question, error) {
	return s.questions.FindByID(id)
}

func (s *QuestionService) QuestionsByTopicID(topicID uint) ([]models.Question, error) {
	return s.questions.FindByTopicID(topicID)
}

func (s *QuestionService) QuestionsByTopicIDAndDifficulty(topicID uint, difficulty models.Difficulty) ([]models.Question, error) {
	return s.questions.FindByTopicIDAndDifficulty(topicID, difficulty)
}

func (s *QuestionService) CreateQuestion(question *models.Question) error {
	if question.Text == "" || question.TopicID == 0 || !question.Difficulty.Valid() {
		return fmt.Errorf("question text, topic and difficulty must be defined: %w", models.ErrInvalidRequest)
	}
	if len(question.Info) > maxInfoLength {
		return fmt.Errorf("info must not exceed %d characters: %w", maxInfoLength, models.ErrInvalidRequest)
	}

	exists, err := s.topics.ExistsByID(question.TopicID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("topic %d: %w", question.TopicID, models.ErrNotFound)
	}

	question.Topic = models.Topic{}
	return s.questions.Save(question)
}

func (s *QuestionService) UpdateQuestion(id uint, req UpdateQuestionRequest) (models.Question, error) {
	question, err := s.questions.FindByID(id)
	if err != nil {
		return models.Question{}, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Info != nil {
		if len(*req.Info) > maxInfoLength {
			return models.Question{}, fmt.Errorf("info must not exceed %d characters: %w", maxInfoLength, models.ErrInvalidRequest)
		}
		question.Info = *req.Info
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return models.Question{}, fmt.Errorf("unknown difficulty %q: %w", *req.Difficulty, models.ErrInvalidRequest)
		}
		question.Difficulty = *req.Difficulty
	}
	if req.TopicID != nil && *req.TopicID != question.TopicID {
		exists, err := s.topics.ExistsByID(*req.TopicID)
		if err != nil {
			return models.Question{}, err
		}
		if !exists {
			return models.Question{}, fmt.Errorf("topic %d: %w", *req.TopicID, models.ErrNotFound)
		}
		question.TopicID = *req.TopicID
		question.Topic = models.Topic{}
	}

	if err := s.questions.Save(&question); err != nil {
		return models.Question{}, err
	}
	return question, nil
}

// DeleteQuestion removes a question. Questions still owning answers cannot be
// deleted.
func (s *QuestionService) DeleteQuestion(id uint) error {
	exists, err := s.questions.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("question %d: %w", id, models.ErrNotFound)
	}

	answers, err := s.answers.FindByQuestionID(id)
	if err != nil {
		return err
	}
	if len(answers) > 0 {
		return fmt.Errorf("question %d still has answers: %w", id, models.ErrConstraintViolation)
	}

	return s.questions.DeleteByID(id)
}

// QuizQuestion picks a uniformly random playable question for the topic and
// difficulty, skipping questions the player has already seen. When every
// playable question has been seen, the player's score is recorded as a
// highscore and ErrQuestionsExhausted is returned.
func (s *QuestionService) QuizQuestion(topicID uint, difficulty models.Difficulty, excludeIDs []uint, playerName string, score int) (*QuizQuestion, error) {
	if topicID == 0 || !difficulty.Valid() {
		return nil, fmt.Errorf("topic and difficulty must be defined: %w", models.ErrInvalidRequest)
	}

	questions, err := s.questions.FindByTopicIDAndDifficulty(topicID, difficulty)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found for topic %d and difficulty %s: %w", topicID, difficulty, models.ErrNotFound)
	}

	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	// Questions with fewer than four answers are under construction and not
	// playable.
	var candidates []models.Question
	answersByQuestion := make(map[uint][]models.Answer)
	for _, question := range questions {
		if excluded[question.ID] {
			continue
		}
		answers, err := s.answers.FindByQuestionID(question.ID)
		if err != nil {
			return nil, err
		}
		if len(answers) < models.QuizAnswerCount {
			continue
		}
		candidates = append(candidates, question)
		answersByQuestion[question.ID] = answers
	}

	if len(candidates) == 0 {
		// Round over: the player has seen every playable question.
		topic, err := s.topics.FindByID(topicID)
		if err != nil {
			return nil, err
		}
		highscore := models.Highscore{
			PlayerName: playerName,
			Score:      score,
			Difficulty: difficulty,
			TopicID:    topic.ID,
		}
		if err := s.highscores.Save(&highscore); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("topic %d difficulty %s: %w", topicID, difficulty, models.ErrQuestionsExhausted)
	}

	question := candidates[s.rng.Intn(len(candidates))]
	answers := answersByQuestion[question.ID]

	shuffled := make([]QuizAnswer, len(answers))
	for i, a := range answers {
		shuffled[i] = QuizAnswer{ID: a.ID, Text: a.Text}
	}
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &QuizQuestion{
		ID:         question.ID,
		Text:       question.Text,
		Difficulty: question.Difficulty,
		Topic:      question.Topic,
		Answers:    shuffled,
	}, nil
}

// CheckAnswer verifies a submitted answer against the stored correct answer.
// An answer ID of zero means the round timer expired without a selection and
// counts as a wrong answer. A wrong answer ends the round and records the
// player's score as a highscore.
func (s *QuestionService) CheckAnswer(questionID uint, req CheckAnswerRequest) (*CorrectQuestion, error) {
	if req.AnswerID == nil || req.PlayerName == "" {
		return nil, fmt.Errorf("answer ID and player name must be defined: %w", models.ErrInvalidRequest)
	}

	question, err := s.questions.FindByID(questionID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answers.FindByQuestionID(questionID)
	if err != nil {
		return nil, err
	}

	answerID := *req.AnswerID
	if answerID != 0 && !containsAnswer(answers, answerID) {
		return nil, fmt.Errorf("answer %d: %w", answerID, models.ErrNotFound)
	}

	correctAnswer, err := correctOf(question.ID, answers)
	if err != nil {
		return nil, err
	}

	correct := correctAnswer.ID == answerID

	if !correct {
		highscore := models.Highscore{
			PlayerName: req.PlayerName,
			Score:      req.Score,
			Difficulty: question.Difficulty,
			TopicID:    question.TopicID,
		}
		if err := s.highscores.Save(&highscore); err != nil {
			return nil, err
		}
	}

	return &CorrectQuestion{
		ID:              question.ID,
		Info:            question.Info,
		Correct:         correct,
		CorrectAnswerID: correctAnswer.ID,
	}, nil
}

// FiftyFiftyJoker returns the question with only two answers left: the
// correct one and a uniformly random wrong one, in random order.
func (s *QuestionService) FiftyFiftyJoker(questionID uint) (*QuizQuestion, error) {
	question, err := s.questions.FindByID(questionID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answers.FindByQuestionID(questionID)
	if err != nil {
		return nil, err
	}

	correctAnswer, err := correctOf(question.ID, answers)
	if err != nil {
		return nil, err
	}

	var wrong []models.Answer
	for _, a := range answers {
		if !a.Correct {
			wrong = append(wrong, a)
		}
	}
	if len(wrong) == 0 {
		log.Printf("question %d has no wrong answers", question.ID)
		return nil, fmt.Errorf("question %d has no wrong answers: %w", question.ID, models.ErrDataCorrupt)
	}
	falseAnswer := wrong[s.rng.Intn(len(wrong))]

	pair := []QuizAnswer{
		{ID: correctAnswer.ID, Text: correctAnswer.Text},
		{ID: falseAnswer.ID, Text: falseAnswer.Text},
	}
	if s.rng.Intn(2) == 1 {
		pair[0], pair[1] = pair[1], pair[0]
	}

	return &QuizQuestion{
		ID:         question.ID,
		Text:       question.Text,
		Difficulty: question.Difficulty,
		Topic:      question.Topic,
		Answers:    pair,
	}, nil
}

// correctOf returns the correct answer of a question. A question that reaches
// quiz play without one indicates corrupted data, not a caller error.
func correctOf(questionID uint, answers []models.Answer) (models.Answer, error) {
	for _, a := range answers {
		if a.Correct {
			return a, nil
		}
	}
	log.Printf("question %d has no correct answer", questionID)
	return models.Answer{}, fmt.Errorf("question %d has no correct answer: %w", questionID, models.ErrDataCorrupt)
}

func containsAnswer(answers []models.Answer, id uint) bool {
	for _, a := range answers {
		if a.ID == id {
			return true
		}
	}
	return false
}
