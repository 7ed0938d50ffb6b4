package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
	"github.com/keydeckapp/keydeck-server/internal/id"
	"github.com/keydeckapp/keydeck-server/internal/logger"
	"github.com/keydeckapp/keydeck-server/internal/quiz"
	"github.com/keydeckapp/keydeck-server/internal/store"
)

// QuizService runs one quiz engine per user and persists completed
// sessions. Engine access is serialized per user; the engines map
// itself is guarded by the service mutex.
type QuizService struct {
	store     store.Store
	logger    *logger.Logger
	newEngine func() *quiz.Engine

	mu      sync.Mutex
	engines map[string]*userQuiz
}

// userQuiz pairs an engine with its own lock and tracks which result
// has already been written to the store, so an Answer that finishes the
// quiz followed by an explicit Complete persists only once.
type userQuiz struct {
	mu        sync.Mutex
	engine    *quiz.Engine
	persisted *quiz.Result
}

// NewQuizService creates a quiz service with the given engine limits.
func NewQuizService(st store.Store, log *logger.Logger, opts quiz.Options) *QuizService {
	return &QuizService{
		store:  st,
		logger: log,
		newEngine: func() *quiz.Engine {
			return quiz.NewWithOptions(rand.New(rand.NewSource(time.Now().UnixNano())), nil, opts)
		},
		engines: make(map[string]*userQuiz),
	}
}

// newQuizServiceWithEngine is a test hook for deterministic engines.
func newQuizServiceWithEngine(st store.Store, log *logger.Logger, newEngine func() *quiz.Engine) *QuizService {
	return &QuizService{
		store:     st,
		logger:    log,
		newEngine: newEngine,
		engines:   make(map[string]*userQuiz),
	}
}

// Status describes the user's active quiz for API consumers. Correct
// answers never leave the engine.
type Status struct {
	State        string          `json:"state"`
	Platform     string          `json:"platform,omitempty"`
	Questions    []quiz.Question `json:"questions,omitempty"`
	CurrentIndex int             `json:"current_index"`
	Remaining    time.Duration   `json:"remaining"`
}

// AnswerOutcome reports what happened to a submitted answer. Result is
// set only once the quiz is complete.
type AnswerOutcome struct {
	Completed    bool
	CurrentIndex int
	Remaining    time.Duration
	Result       *quiz.Result
}

// user returns the quiz slot for a user, creating it if needed.
func (s *QuizService) user(userID string) *userQuiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	uq, ok := s.engines[userID]
	if !ok {
		uq = &userQuiz{engine: s.newEngine()}
		s.engines[userID] = uq
	}
	return uq
}

// Start begins a new quiz for the user, replacing any active one.
func (s *QuizService) Start(ctx context.Context, userID, platform string) (*Status, error) {
	pool, err := s.store.ListShortcuts(ctx)
	if err != nil {
		return nil, err
	}

	uq := s.user(userID)
	uq.mu.Lock()
	defer uq.mu.Unlock()

	if err := uq.engine.Start(platform, pool); err != nil {
		return nil, err
	}
	uq.persisted = nil

	s.logger.Info("quiz started", "user_id", userID, "platform", platform)
	return s.statusLocked(uq), nil
}

// Answer submits the user's answer for the current question. When the
// submission completes the quiz, the graded session is persisted and
// the result returned. Persistence failure is logged and reported to
// the caller via the outcome's Result regardless; history just misses
// an entry.
func (s *QuizService) Answer(ctx context.Context, userID, answer string) (*AnswerOutcome, error) {
	uq := s.user(userID)
	uq.mu.Lock()
	defer uq.mu.Unlock()

	result, err := uq.engine.Submit(answer)
	if err != nil {
		return nil, err
	}

	outcome := &AnswerOutcome{
		CurrentIndex: uq.engine.CurrentIndex(),
		Remaining:    uq.engine.Remaining(),
	}
	if result != nil {
		outcome.Completed = true
		outcome.Result = result
		s.persistLocked(ctx, userID, uq, result)
	}
	return outcome, nil
}

// Complete grades the user's quiz from the answers given so far and
// persists the session. Completing an already-completed quiz returns
// the stored result without persisting again.
func (s *QuizService) Complete(ctx context.Context, userID string) (*quiz.Result, error) {
	uq := s.user(userID)
	uq.mu.Lock()
	defer uq.mu.Unlock()

	result, err := uq.engine.Complete()
	if err != nil {
		return nil, err
	}
	s.persistLocked(ctx, userID, uq, result)
	return result, nil
}

// Reset discards the user's quiz state.
func (s *QuizService) Reset(userID string) {
	uq := s.user(userID)
	uq.mu.Lock()
	defer uq.mu.Unlock()
	uq.engine.Reset()
	uq.persisted = nil
}

// CurrentStatus returns the user's quiz state without mutating it.
func (s *QuizService) CurrentStatus(userID string) *Status {
	uq := s.user(userID)
	uq.mu.Lock()
	defer uq.mu.Unlock()
	return s.statusLocked(uq)
}

func (s *QuizService) statusLocked(uq *userQuiz) *Status {
	return &Status{
		State:        uq.engine.CurrentState().String(),
		Platform:     uq.engine.Platform(),
		Questions:    uq.engine.Questions(),
		CurrentIndex: uq.engine.CurrentIndex(),
		Remaining:    uq.engine.Remaining(),
	}
}

// persistLocked writes the graded session once per completion. Must be
// called with the user's quiz lock held.
func (s *QuizService) persistLocked(ctx context.Context, userID string, uq *userQuiz, result *quiz.Result) {
	if uq.persisted == result {
		return
	}
	uq.persisted = result

	session := &domain.QuizSession{
		ID:             id.MustGenerate("quiz"),
		UserID:         userID,
		Platform:       result.Platform,
		Score:          result.Score,
		TotalQuestions: result.Total,
		CompletedAt:    result.CompletedAt,
	}
	if err := s.store.CreateQuizSession(ctx, session); err != nil {
		s.logger.WithError(err).Warn("failed to persist quiz session",
			"user_id", userID, "platform", result.Platform)
		return
	}
	s.logger.Info("quiz completed",
		"user_id", userID, "platform", result.Platform,
		"score", result.Score, "total", result.Total, "expired", result.Expired)
}

// RecordSession stores a session supplied directly by the client.
func (s *QuizService) RecordSession(ctx context.Context, userID, platform string, score, total int) (*domain.QuizSession, error) {
	if total < 1 {
		return nil, errors.Validation("total_questions must be positive")
	}
	if score < 0 || score > total {
		return nil, errors.Validation("score must be within [0, total_questions]")
	}

	session := &domain.QuizSession{
		ID:             id.MustGenerate("quiz"),
		UserID:         userID,
		Platform:       platform,
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateQuizSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// History returns the user's sessions, most recent first.
func (s *QuizService) History(ctx context.Context, userID string) ([]domain.QuizSession, error) {
	return s.store.ListQuizHistory(ctx, userID)
}
