package models

import "fmt"

// SortBy selects the highscore sort key.
type SortBy string

const (
	SortByID         SortBy = "ID"
	SortByPlayerName SortBy = "PLAYER_NAME"
	SortByScore      SortBy = "SCORE"
	SortByDifficulty SortBy = "DIFFICULTY"
	SortByTopic      SortBy = "TOPIC"
)

func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByID, SortByPlayerName, SortByScore, SortByDifficulty, SortByTopic:
		return SortBy(s), nil
	}
	return "", fmt.Errorf("unknown sortBy %q: %w", s, ErrInvalidRequest)
}

// SortDir selects the highscore sort direction.
type SortDir string

const (
	SortAsc  SortDir = "ASC"
	SortDesc SortDir = "DESC"
)

func ParseSortDir(s string) (SortDir, error) {
	switch SortDir(s) {
	case SortAsc, SortDesc:
		return SortDir(s), nil
	}
	return "", fmt.Errorf("unknown sortDir %q: %w", s, ErrInvalidRequest)
}
