package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// quizSessionColumns must match the scan order in scanQuizSession.
const quizSessionColumns = `id, user_id, platform, score, total_questions, completed_at`

func scanQuizSession(scanner interface{ Scan(dest ...any) error }) (*domain.QuizSession, error) {
	var qs domain.QuizSession
	var completedAt string

	err := scanner.Scan(
		&qs.ID,
		&qs.UserID,
		&qs.Platform,
		&qs.Score,
		&qs.TotalQuestions,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	qs.CompletedAt, err = parseTime(completedAt)
	if err != nil {
		return nil, err
	}
	return &qs, nil
}

// CreateQuizSession appends a completed session to the history.
func (s *Store) CreateQuizSession(ctx context.Context, session *domain.QuizSession) error {
	if session.Score < 0 || session.Score > session.TotalQuestions {
		return store.ErrInvalidInput.WithMessage("score out of range")
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quiz_sessions (id, user_id, platform, score, total_questions, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.Platform,
		session.Score, session.TotalQuestions, formatTime(session.CompletedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("insert quiz session: %w", err)
	}
	return nil
}

// ListQuizHistory returns the user's sessions, most recent first.
func (s *Store) ListQuizHistory(ctx context.Context, userID string) ([]domain.QuizSession, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+quizSessionColumns+` FROM quiz_sessions
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}
	defer rows.Close()

	out := make([]domain.QuizSession, 0)
	for rows.Next() {
		qs, err := scanQuizSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz session: %w", err)
		}
		out = append(out, *qs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
