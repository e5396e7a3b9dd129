package models

import "time"

// Question represents a poll question row.
type Question struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	QuestionText string    `json:"question_text" db:"question_text"` // Text shown to voters
	PubDate      time.Time `json:"pub_date" db:"pub_date"`           // Publication timestamp
}
