package models

// VoteIntent is published whenever someone opens the vote view of a question.
// It is an event only; no vote is counted.
type VoteIntent struct {
	QuestionID int64  `json:"question_id"` // Question the vote view was opened for
	RequestID  string `json:"request_id"`  // X-Request-ID of the originating request
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp (seconds)
}
