package models

import "time"

// QuizAnswerCount is the number of answers a question needs before it can be
// served in a quiz round. Questions below the count are under construction.
const QuizAnswerCount = 4

type Question struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TopicID    uint       `json:"topic_id" gorm:"not null"`
	Text       string     `json:"question" gorm:"not null"`
	Info       string     `json:"info" gorm:"size:2000"`
	Difficulty Difficulty `json:"difficulty" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Topic Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
}
