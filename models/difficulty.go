package models

import "fmt"

// Difficulty of a question. Stored as its string form.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty converts the wire/query form into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q: %w", s, ErrInvalidRequest)
}

// Ordinal orders difficulties EASY < MEDIUM < HARD for sorting.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return -1
}

func (d Difficulty) Valid() bool {
	return d.Ordinal() >= 0
}
