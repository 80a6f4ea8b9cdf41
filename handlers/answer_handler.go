package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triviaquest/models"
	"triviaquest/services"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// GetAllAnswers lists answers, optionally narrowed to a single question.
func (h *AnswerHandler) GetAllAnswers(c *gin.Context) {
	if questionIDParam := c.Query("questionId"); questionIDParam != "" {
		questionID, err := strconv.ParseUint(questionIDParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
			return
		}

		answers, err := h.answerService.AnswersByQuestionID(uint(questionID))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, answers)
		return
	}

	answers, err := h.answerService.AllAnswers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var answer models.Answer
	if err := c.ShouldBindJSON(&answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.answerService.CreateAnswer(&answer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, answer)
}

func (h *AnswerHandler) GetAnswerByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	answer, err := h.answerService.AnswerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	var req services.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.answerService.UpdateAnswer(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	if err := h.answerService.DeleteAnswer(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
