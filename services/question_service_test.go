package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triviaquest/models"
)

type quizFixture struct {
	service    *QuestionService
	topics     *fakeTopicRepo
	questions  *fakeQuestionRepo
	answers    *fakeAnswerRepo
	highscores *fakeHighscoreRepo
	topic      models.Topic
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	f := &quizFixture{
		topics:     newFakeTopicRepo(),
		questions:  newFakeQuestionRepo(),
		answers:    newFakeAnswerRepo(),
		highscores: newFakeHighscoreRepo(),
	}
	f.service = NewQuestionService(f.questions, f.topics, f.answers, f.highscores, rand.New(rand.NewSource(1)))

	f.topic = models.Topic{Name: "Science", Description: "Natural sciences"}
	require.NoError(t, f.topics.Save(&f.topic))

	return f
}

// addQuestion seeds a question with the given number of answers; the first
// answer is the correct one. It returns the question and the correct answer ID.
func (f *quizFixture) addQuestion(t *testing.T, difficulty models.Difficulty, answerCount int) (models.Question, uint) {
	t.Helper()

	question := models.Question{
		TopicID:    f.topic.ID,
		Text:       "What is the chemical symbol for gold?",
		Info:       "Aurum is Latin for gold.",
		Difficulty: difficulty,
		Topic:      f.topic,
	}
	require.NoError(t, f.questions.Save(&question))

	var correctID uint
	for i := 0; i < answerCount; i++ {
		answer := models.Answer{QuestionID: question.ID, Text: "option", Correct: i == 0}
		require.NoError(t, f.answers.Save(&answer))
		if i == 0 {
			correctID = answer.ID
		}
	}
	return question, correctID
}

func TestQuizQuestionRequiresTopicAndDifficulty(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.service.QuizQuestion(0, models.DifficultyEasy, nil, "Alice", 0)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = f.service.QuizQuestion(f.topic.ID, "", nil, "Alice", 0)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestQuizQuestionNoQuestionsAtAll(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.service.QuizQuestion(f.topic.ID, models.DifficultyEasy, nil, "Alice", 0)
	require.ErrorIs(t, err, models.ErrNotFound)

	// No highscore is written for the error case.
	highscores, _ := f.highscores.FindAll()
	assert.Empty(t, highscores)
}

func TestQuizQuestionServesShuffledAnswers(t *testing.T) {
	f := newQuizFixture(t)
	question, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	got, err := f.service.QuizQuestion(f.topic.ID, models.DifficultyEasy, nil, "Alice", 0)
	require.NoError(t, err)

	assert.Equal(t, question.ID, got.ID)
	assert.Equal(t, question.Text, got.Text)
	assert.Equal(t, models.DifficultyEasy, got.Difficulty)
	assert.Equal(t, f.topic.Name, got.Topic.Name)
	require.Len(t, got.Answers, 4)

	// All four stored answers are present, none repeated.
	seen := make(map[uint]bool)
	for _, a := range got.Answers {
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
	}
}

func TestQuizQuestionSkipsExcludedAndIncomplete(t *testing.T) {
	f := newQuizFixture(t)
	complete, _ := f.addQuestion(t, models.DifficultyEasy, 4)
	incomplete, _ := f.addQuestion(t, models.DifficultyEasy, 3)
	excluded, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	// Many draws: the incomplete and excluded questions must never surface.
	for i := 0; i < 50; i++ {
		got, err := f.service.QuizQuestion(f.topic.ID, models.DifficultyEasy, []uint{excluded.ID}, "Alice", 0)
		require.NoError(t, err)
		assert.Equal(t, complete.ID, got.ID)
		assert.NotEqual(t, incomplete.ID, got.ID)
		assert.NotEqual(t, excluded.ID, got.ID)
	}
}

func TestQuizQuestionExhaustionRecordsHighscore(t *testing.T) {
	f := newQuizFixture(t)
	question, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	got, err := f.service.QuizQuestion(f.topic.ID, models.DifficultyEasy, []uint{question.ID}, "Bob", 50)
	require.ErrorIs(t, err, models.ErrQuestionsExhausted)
	assert.NotErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, got)

	highscores, _ := f.highscores.FindAll()
	require.Len(t, highscores, 1)
	assert.Equal(t, "Bob", highscores[0].PlayerName)
	assert.Equal(t, 50, highscores[0].Score)
	assert.Equal(t, models.DifficultyEasy, highscores[0].Difficulty)
	assert.Equal(t, f.topic.ID, highscores[0].TopicID)
}

func TestQuizQuestionOnlyIncompleteQuestionsExhausts(t *testing.T) {
	f := newQuizFixture(t)
	f.addQuestion(t, models.DifficultyEasy, 2)

	_, err := f.service.QuizQuestion(f.topic.ID, models.DifficultyEasy, nil, "Alice", 10)
	require.ErrorIs(t, err, models.ErrQuestionsExhausted)

	highscores, _ := f.highscores.FindAll()
	assert.Len(t, highscores, 1)
}

func uintPtr(v uint) *uint { return &v }

func TestCheckAnswerCorrect(t *testing.T) {
	f := newQuizFixture(t)
	question, correctID := f.addQuestion(t, models.DifficultyEasy, 4)

	result, err := f.service.CheckAnswer(question.ID, CheckAnswerRequest{
		AnswerID:   uintPtr(correctID),
		PlayerName: "Alice",
		Score:      0,
	})
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, correctID, result.CorrectAnswerID)
	assert.Equal(t, question.Info, result.Info)

	highscores, _ := f.highscores.FindAll()
	assert.Empty(t, highscores)
}

func TestCheckAnswerWrongRecordsHighscore(t *testing.T) {
	f := newQuizFixture(t)
	question, correctID := f.addQuestion(t, models.DifficultyEasy, 4)

	answers, _ := f.answers.FindByQuestionID(question.ID)
	var wrongID uint
	for _, a := range answers {
		if !a.Correct {
			wrongID = a.ID
			break
		}
	}

	result, err := f.service.CheckAnswer(question.ID, CheckAnswerRequest{
		AnswerID:   uintPtr(wrongID),
		PlayerName: "Alice",
		Score:      0,
	})
	require.NoError(t, err)

	assert.False(t, result.Correct)
	assert.Equal(t, correctID, result.CorrectAnswerID)
	assert.Equal(t, question.Info, result.Info)

	highscores, _ := f.highscores.FindAll()
	require.Len(t, highscores, 1)
	assert.Equal(t, "Alice", highscores[0].PlayerName)
	assert.Equal(t, 0, highscores[0].Score)
	assert.Equal(t, question.Difficulty, highscores[0].Difficulty)
	assert.Equal(t, question.TopicID, highscores[0].TopicID)
}

func TestCheckAnswerTimerExpired(t *testing.T) {
	f := newQuizFixture(t)
	question, correctID := f.addQuestion(t, models.DifficultyEasy, 4)

	// Answer ID zero means the timer ran out; it counts as wrong without a
	// membership check.
	result, err := f.service.CheckAnswer(question.ID, CheckAnswerRequest{
		AnswerID:   uintPtr(0),
		PlayerName: "Alice",
		Score:      30,
	})
	require.NoError(t, err)

	assert.False(t, result.Correct)
	assert.Equal(t, correctID, result.CorrectAnswerID)

	highscores, _ := f.highscores.FindAll()
	require.Len(t, highscores, 1)
	assert.Equal(t, 30, highscores[0].Score)
}

func TestCheckAnswerValidation(t *testing.T) {
	f := newQuizFixture(t)
	question, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	_, err := f.service.CheckAnswer(question.ID, CheckAnswerRequest{PlayerName: "Alice"})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = f.service.CheckAnswer(question.ID, CheckAnswerRequest{AnswerID: uintPtr(1)})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = f.service.CheckAnswer(999, CheckAnswerRequest{AnswerID: uintPtr(1), PlayerName: "Alice"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.service.CheckAnswer(question.ID, CheckAnswerRequest{AnswerID: uintPtr(999), PlayerName: "Alice"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCheckAnswerCorruptQuestion(t *testing.T) {
	f := newQuizFixture(t)

	question := models.Question{TopicID: f.topic.ID, Text: "broken", Difficulty: models.DifficultyEasy}
	require.NoError(t, f.questions.Save(&question))
	for i := 0; i < 4; i++ {
		require.NoError(t, f.answers.Save(&models.Answer{QuestionID: question.ID, Text: "option"}))
	}

	answers, _ := f.answers.FindByQuestionID(question.ID)
	_, err := f.service.CheckAnswer(question.ID, CheckAnswerRequest{
		AnswerID:   uintPtr(answers[0].ID),
		PlayerName: "Alice",
	})
	assert.ErrorIs(t, err, models.ErrDataCorrupt)
}

func TestFiftyFiftyJoker(t *testing.T) {
	f := newQuizFixture(t)
	question, correctID := f.addQuestion(t, models.DifficultyMedium, 4)

	// The pair always contains the correct answer plus one wrong answer,
	// whatever the random ordering.
	for i := 0; i < 50; i++ {
		got, err := f.service.FiftyFiftyJoker(question.ID)
		require.NoError(t, err)
		require.Len(t, got.Answers, 2)

		var correctSeen int
		for _, a := range got.Answers {
			if a.ID == correctID {
				correctSeen++
			}
		}
		assert.Equal(t, 1, correctSeen)
		assert.NotEqual(t, got.Answers[0].ID, got.Answers[1].ID)
	}
}

func TestFiftyFiftyJokerNotFound(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.service.FiftyFiftyJoker(999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFiftyFiftyJokerCorruptQuestion(t *testing.T) {
	f := newQuizFixture(t)

	question := models.Question{TopicID: f.topic.ID, Text: "broken", Difficulty: models.DifficultyEasy}
	require.NoError(t, f.questions.Save(&question))
	for i := 0; i < 4; i++ {
		require.NoError(t, f.answers.Save(&models.Answer{QuestionID: question.ID, Text: "option"}))
	}

	_, err := f.service.FiftyFiftyJoker(question.ID)
	assert.ErrorIs(t, err, models.ErrDataCorrupt)
}

func TestCreateQuestionValidation(t *testing.T) {
	f := newQuizFixture(t)

	err := f.service.CreateQuestion(&models.Question{TopicID: f.topic.ID, Difficulty: models.DifficultyEasy})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	err = f.service.CreateQuestion(&models.Question{TopicID: f.topic.ID, Text: "q", Difficulty: "IMPOSSIBLE"})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	err = f.service.CreateQuestion(&models.Question{TopicID: 999, Text: "q", Difficulty: models.DifficultyEasy})
	assert.ErrorIs(t, err, models.ErrNotFound)

	long := make([]byte, 2001)
	for i := range long {
		long[i] = 'x'
	}
	err = f.service.CreateQuestion(&models.Question{TopicID: f.topic.ID, Text: "q", Info: string(long), Difficulty: models.DifficultyEasy})
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestUpdateQuestion(t *testing.T) {
	f := newQuizFixture(t)
	question, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	difficulty := models.DifficultyHard
	updated, err := f.service.UpdateQuestion(question.ID, UpdateQuestionRequest{Difficulty: &difficulty})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyHard, updated.Difficulty)
	assert.Equal(t, question.Text, updated.Text)

	_, err = f.service.UpdateQuestion(999, UpdateQuestionRequest{Difficulty: &difficulty})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteQuestionBlockedByAnswers(t *testing.T) {
	f := newQuizFixture(t)
	question, _ := f.addQuestion(t, models.DifficultyEasy, 4)

	err := f.service.DeleteQuestion(question.ID)
	require.ErrorIs(t, err, models.ErrConstraintViolation)

	empty := models.Question{TopicID: f.topic.ID, Text: "empty", Difficulty: models.DifficultyEasy}
	require.NoError(t, f.questions.Save(&empty))
	require.NoError(t, f.service.DeleteQuestion(empty.ID))

	assert.ErrorIs(t, f.service.DeleteQuestion(empty.ID), models.ErrNotFound)
}
