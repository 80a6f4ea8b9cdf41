package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triviaquest/models"
	"triviaquest/services"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetAllQuestions lists questions, optionally narrowed to a topic/difficulty
// pair. The two filters must be given together or not at all.
func (h *QuestionHandler) GetAllQuestions(c *gin.Context) {
	topicIDParam := c.Query("topicId")
	difficultyParam := c.Query("difficulty")

	if topicIDParam != "" && difficultyParam != "" {
		topicID, err := strconv.ParseUint(topicIDParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
			return
		}
		difficulty, err := models.ParseDifficulty(difficultyParam)
		if err != nil {
			respondError(c, err)
			return
		}

		questions, err := h.questionService.QuestionsByTopicIDAndDifficulty(uint(topicID), difficulty)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, questions)
		return
	}

	if topicIDParam != "" || difficultyParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topicId and difficulty must be given together"})
		return
	}

	questions, err := h.questionService.AllQuestions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.questionService.CreateQuestion(&question); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	question, err := h.questionService.QuestionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.UpdateQuestion(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	if err := h.questionService.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetQuizQuestion serves the next random question of a round. When the round
// has used up every playable question the response is a 200 with a null body;
// the player's score has then been recorded as a highscore.
func (h *QuestionHandler) GetQuizQuestion(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Query("topicId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}
	difficulty, err := models.ParseDifficulty(c.Query("difficulty"))
	if err != nil {
		respondError(c, err)
		return
	}
	excludeIDs, err := parseUintList(c.QueryArray("excludeIds"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude IDs"})
		return
	}
	playerName := c.Query("playerName")
	score, err := strconv.Atoi(c.DefaultQuery("score", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid score"})
		return
	}

	question, err := h.questionService.QuizQuestion(uint(topicID), difficulty, excludeIDs, playerName, score)
	if errors.Is(err, models.ErrQuestionsExhausted) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// CheckAnswer resolves a submitted answer and reveals the correct one.
func (h *QuestionHandler) CheckAnswer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var req services.CheckAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.questionService.CheckAnswer(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UseJoker applies an in-game aid to a question. Only the 50/50 joker exists.
func (h *QuestionHandler) UseJoker(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	if c.Query("joker") != "FIFTY_FIFTY" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown joker"})
		return
	}

	question, err := h.questionService.FiftyFiftyJoker(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}
