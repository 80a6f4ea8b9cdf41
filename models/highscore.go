package models

import "time"

// Highscore records a player's score at the moment a round ended, either
// through a wrong answer or by running out of questions.
type Highscore struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	PlayerName string     `json:"player_name" gorm:"not null"`
	Score      int        `json:"score" gorm:"not null"`
	Difficulty Difficulty `json:"difficulty" gorm:"not null"`
	TopicID    uint       `json:"topic_id" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Topic Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
}
