package services

import (
	"fmt"
	"sort"
	"strings"

	"triviaquest/models"
)

// HighscoreService records scores of ended rounds and serves the sorted,
// filtered highscore listing.
type HighscoreService struct {
	highscores HighscoreRepository
}

func NewHighscoreService(highscores HighscoreRepository) *HighscoreService {
	return &HighscoreService{highscores: highscores}
}

type UpdateHighscoreRequest struct {
	PlayerName *string            `json:"player_name"`
	Score      *int               `json:"score"`
	Difficulty *models.Difficulty `json:"difficulty"`
	TopicID    *uint              `json:"topic_id"`
}

// ListHighscores returns highscores, optionally filtered by topic and
// difficulty, sorted by the given key and truncated to limit entries. The two
// filters must be given together or not at all.
func (s *HighscoreService) ListHighscores(topicID *uint, difficulty *models.Difficulty, sortBy models.SortBy, sortDir models.SortDir, limit *int) ([]models.Highscore, error) {
	var highscores []models.Highscore
	var err error

	switch {
	case topicID != nil && difficulty != nil:
		highscores, err = s.highscores.FindByTopicIDAndDifficulty(*topicID, *difficulty)
	case topicID != nil || difficulty != nil:
		return nil, fmt.Errorf("topic and difficulty filters must be used together: %w", models.ErrInvalidRequest)
	default:
		highscores, err = s.highscores.FindAll()
	}
	if err != nil {
		return nil, err
	}

	sortHighscores(highscores, sortBy, sortDir)

	if limit != nil {
		n := *limit
		if n < 0 {
			n = 0
		}
		if n < len(highscores) {
			highscores = highscores[:n]
		}
	}

	return highscores, nil
}

// sortHighscores orders the slice in place. Descending order is the sign
// inversion of the ascending comparator, so the relative order of ties is
// direction-dependent.
func sortHighscores(highscores []models.Highscore, sortBy models.SortBy, sortDir models.SortDir) {
	sort.SliceStable(highscores, func(i, j int) bool {
		c := compareHighscores(highscores[i], highscores[j], sortBy)
		if sortDir == models.SortDesc {
			c = -c
		}
		return c < 0
	})
}

func compareHighscores(a, b models.Highscore, sortBy models.SortBy) int {
	switch sortBy {
	case models.SortByPlayerName:
		return strings.Compare(a.PlayerName, b.PlayerName)
	case models.SortByScore:
		return a.Score - b.Score
	case models.SortByDifficulty:
		return a.Difficulty.Ordinal() - b.Difficulty.Ordinal()
	case models.SortByTopic:
		return strings.Compare(a.Topic.Name, b.Topic.Name)
	default: // models.SortByID
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}
}

// CreateHighscore records a score unconditionally; any integer score is
// valid, including zero.
func (s *HighscoreService) CreateHighscore(highscore *models.Highscore) error {
	if highscore.PlayerName == "" || highscore.TopicID == 0 || !highscore.Difficulty.Valid() {
		return fmt.Errorf("player name, topic and difficulty must be defined: %w", models.ErrInvalidRequest)
	}
	return s.highscores.Save(highscore)
}

func (s *HighscoreService) HighscoreByID(id uint) (models.Highscore, error) {
	return s.highscores.FindByID(id)
}

func (s *HighscoreService) UpdateHighscore(id uint, req UpdateHighscoreRequest) (models.Highscore, error) {
	highscore, err := s.highscores.FindByID(id)
	if err != nil {
		return models.Highscore{}, err
	}

	if req.PlayerName != nil {
		highscore.PlayerName = *req.PlayerName
	}
	if req.Score != nil {
		highscore.Score = *req.Score
	}
	if req.Difficulty != nil {
		if !req.Difficulty.Valid() {
			return models.Highscore{}, fmt.Errorf("unknown difficulty %q: %w", *req.Difficulty, models.ErrInvalidRequest)
		}
		highscore.Difficulty = *req.Difficulty
	}
	if req.TopicID != nil {
		highscore.TopicID = *req.TopicID
		highscore.Topic = models.Topic{}
	}

	if err := s.highscores.Save(&highscore); err != nil {
		return models.Highscore{}, err
	}
	return highscore, nil
}

func (s *HighscoreService) DeleteHighscore(id uint) error {
	exists, err := s.highscores.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("highscore %d: %w", id, models.ErrNotFound)
	}
	return s.highscores.DeleteByID(id)
}
