package services

import (
	"fmt"

	"triviaquest/models"
)

// AnswerService owns the answers of a question and guards the answer-set
// invariants: at most four answers per question, at most one of them correct,
// and a correct answer must exist by the time the fourth slot is filled.
type AnswerService struct {
	answers   AnswerRepository
	questions QuestionRepository
}

func NewAnswerService(answers AnswerRepository, questions QuestionRepository) *AnswerService {
	return &AnswerService{answers: answers, questions: questions}
}

type UpdateAnswerRequest struct {
	Text       *string `json:"answer"`
	Correct    *bool   `json:"correct"`
	QuestionID *uint   `json:"question_id"`
}

func (s *AnswerService) AllAnswers() ([]models.Answer, error) {
	return s.answers.FindAll()
}

func (s *AnswerService) AnswerByID(id uint) (models.Answer, error) {
	return s.answers.FindByID(id)
}

// AnswersByQuestionID returns the answers of a question, failing if the
// question itself does not exist.
func (s *AnswerService) AnswersByQuestionID(questionID uint) ([]models.Answer, error) {
	exists, err := s.questions.ExistsByID(questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("question %d: %w", questionID, models.ErrNotFound)
	}
	return s.answers.FindByQuestionID(questionID)
}

// CreateAnswer stores a new answer after checking the answer-set invariants
// against the question's existing answers.
func (s *AnswerService) CreateAnswer(answer *models.Answer) error {
	if answer.Text == "" || answer.QuestionID == 0 {
		return fmt.Errorf("answer text and question must be defined: %w", models.ErrInvalidRequest)
	}

	exists, err := s.questions.ExistsByID(answer.QuestionID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("question %d: %w", answer.QuestionID, models.ErrNotFound)
	}

	existing, err := s.answers.FindByQuestionID(answer.QuestionID)
	if err != nil {
		return err
	}

	if err := checkAnswerSet(existing, answer.Correct); err != nil {
		return err
	}

	return s.answers.Save(answer)
}

// checkAnswerSet verifies that adding an answer with the given correctness to
// the existing set keeps the set valid.
func checkAnswerSet(existing []models.Answer, correct bool) error {
	if len(existing) >= models.QuizAnswerCount {
		return fmt.Errorf("a question can only have %d answers: %w", models.QuizAnswerCount, models.ErrConstraintViolation)
	}
	if correct && hasCorrect(existing) {
		return fmt.Errorf("a question can only have one correct answer: %w", models.ErrConstraintViolation)
	}
	// The last slot must not be filled with a wrong answer while no correct
	// answer exists yet.
	if !correct && !hasCorrect(existing) && len(existing) == models.QuizAnswerCount-1 {
		return fmt.Errorf("a question must have at least one correct answer: %w", models.ErrConstraintViolation)
	}
	return nil
}

func hasCorrect(answers []models.Answer) bool {
	for _, a := range answers {
		if a.Correct {
			return true
		}
	}
	return false
}

// UpdateAnswer applies a partial update. Moving the answer to another question
// re-checks the answer cap against that question; changing correctness
// re-checks single-correctness against the target question's other answers.
func (s *AnswerService) UpdateAnswer(id uint, req UpdateAnswerRequest) (models.Answer, error) {
	answer, err := s.answers.FindByID(id)
	if err != nil {
		return models.Answer{}, err
	}

	if req.QuestionID != nil && *req.QuestionID != answer.QuestionID {
		exists, err := s.questions.ExistsByID(*req.QuestionID)
		if err != nil {
			return models.Answer{}, err
		}
		if !exists {
			return models.Answer{}, fmt.Errorf("question %d: %w", *req.QuestionID, models.ErrNotFound)
		}

		target, err := s.answers.FindByQuestionID(*req.QuestionID)
		if err != nil {
			return models.Answer{}, err
		}
		if len(target) >= models.QuizAnswerCount {
			return models.Answer{}, fmt.Errorf("a question can only have %d answers: %w", models.QuizAnswerCount, models.ErrConstraintViolation)
		}
		answer.QuestionID = *req.QuestionID
	}

	if req.Text != nil {
		answer.Text = *req.Text
	}
	if req.Correct != nil {
		answer.Correct = *req.Correct
	}

	if answer.Correct {
		siblings, err := s.answers.FindByQuestionID(answer.QuestionID)
		if err != nil {
			return models.Answer{}, err
		}
		for _, a := range siblings {
			if a.Correct && a.ID != answer.ID {
				return models.Answer{}, fmt.Errorf("a question can only have one correct answer: %w", models.ErrConstraintViolation)
			}
		}
	}

	if err := s.answers.Save(&answer); err != nil {
		return models.Answer{}, err
	}
	return answer, nil
}

func (s *AnswerService) DeleteAnswer(id uint) error {
	exists, err := s.answers.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("answer %d: %w", id, models.ErrNotFound)
	}
	return s.answers.DeleteByID(id)
}
