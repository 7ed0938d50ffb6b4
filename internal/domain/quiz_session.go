package domain

import "time"

// QuizSession is an append-only record of a completed quiz. Sessions
// are never mutated after creation; Score is always within
// [0, TotalQuestions].
type QuizSession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Platform       string    `json:"platform"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Percentage returns the session score as a rounded integer percentage.
func (s *QuizSession) Percentage() int {
	if s.TotalQuestions == 0 {
		return 0
	}
	return (s.Score*100 + s.TotalQuestions/2) / s.TotalQuestions
}
