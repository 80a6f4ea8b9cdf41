package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triviaquest/models"
	"triviaquest/services"
)

type HighscoreHandler struct {
	highscoreService *services.HighscoreService
}

func NewHighscoreHandler(highscoreService *services.HighscoreService) *HighscoreHandler {
	return &HighscoreHandler{highscoreService: highscoreService}
}

// GetAllHighscores lists highscores sorted by the requested key, optionally
// filtered by a topic/difficulty pair and truncated to a limit.
func (h *HighscoreHandler) GetAllHighscores(c *gin.Context) {
	sortBy, err := models.ParseSortBy(c.DefaultQuery("sortBy", string(models.SortByID)))
	if err != nil {
		respondError(c, err)
		return
	}
	sortDir, err := models.ParseSortDir(c.DefaultQuery("sortDir", string(models.SortAsc)))
	if err != nil {
		respondError(c, err)
		return
	}

	var topicID *uint
	if param := c.Query("topicId"); param != "" {
		id, err := strconv.ParseUint(param, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
			return
		}
		v := uint(id)
		topicID = &v
	}

	var difficulty *models.Difficulty
	if param := c.Query("difficulty"); param != "" {
		d, err := models.ParseDifficulty(param)
		if err != nil {
			respondError(c, err)
			return
		}
		difficulty = &d
	}

	var limit *int
	if param := c.Query("limit"); param != "" {
		n, err := strconv.Atoi(param)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = &n
	}

	highscores, err := h.highscoreService.ListHighscores(topicID, difficulty, sortBy, sortDir, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, highscores)
}

func (h *HighscoreHandler) CreateHighscore(c *gin.Context) {
	var highscore models.Highscore
	if err := c.ShouldBindJSON(&highscore); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.highscoreService.CreateHighscore(&highscore); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, highscore)
}

func (h *HighscoreHandler) GetHighscoreByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid highscore ID"})
		return
	}

	highscore, err := h.highscoreService.HighscoreByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, highscore)
}

func (h *HighscoreHandler) UpdateHighscore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid highscore ID"})
		return
	}

	var req services.UpdateHighscoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	highscore, err := h.highscoreService.UpdateHighscore(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, highscore)
}

func (h *HighscoreHandler) DeleteHighscore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid highscore ID"})
		return
	}

	if err := h.highscoreService.DeleteHighscore(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
