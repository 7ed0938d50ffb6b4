package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/quiz"
	"github.com/keydeckapp/keydeck-server/internal/service"
)

func (s *Server) registerQuizRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "startQuiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz/start",
		Summary:     "Start quiz",
		Description: "Starts a new quiz over one platform's shortcuts, replacing any active quiz",
		Tags:        []string{"Quiz"},
	}, s.handleStartQuiz)

	huma.Register(s.api, huma.Operation{
		OperationID: "answerQuiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz/answer",
		Summary:     "Answer quiz question",
		Description: "Submits the answer for the current question; the final answer grades the quiz",
		Tags:        []string{"Quiz"},
	}, s.handleAnswerQuiz)

	huma.Register(s.api, huma.Operation{
		OperationID: "completeQuiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz/complete",
		Summary:     "Complete quiz",
		Description: "Grades the quiz from the answers given so far",
		Tags:        []string{"Quiz"},
	}, s.handleCompleteQuiz)

	huma.Register(s.api, huma.Operation{
		OperationID: "resetQuiz",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz/reset",
		Summary:     "Reset quiz",
		Description: "Discards the user's quiz state",
		Tags:        []string{"Quiz"},
	}, s.handleResetQuiz)

	huma.Register(s.api, huma.Operation{
		OperationID: "createQuizSession",
		Method:      http.MethodPost,
		Path:        "/api/v1/quiz-sessions",
		Summary:     "Record quiz session",
		Description: "Stores a completed session supplied by the client",
		Tags:        []string{"Quiz"},
	}, s.handleCreateQuizSession)

	huma.Register(s.api, huma.Operation{
		OperationID: "listQuizHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/quiz-history/{userId}",
		Summary:     "List quiz history",
		Description: "Returns the user's sessions, most recent first",
		Tags:        []string{"Quiz"},
	}, s.handleListQuizHistory)
}

// === DTOs ===

// StartQuizRequest is the request body for starting a quiz.
type StartQuizRequest struct {
	UserID   string `json:"user_id" validate:"required" doc:"User ID"`
	Platform string `json:"platform" validate:"required" doc:"Platform to quiz on"`
}

// StartQuizInput wraps the start quiz request for Huma.
type StartQuizInput struct {
	Body StartQuizRequest
}

// QuizStatusResponse describes the active quiz. Correct answers are
// never included.
type QuizStatusResponse struct {
	State            string          `json:"state" doc:"idle, in_progress, or completed"`
	Platform         string          `json:"platform,omitempty" doc:"Platform being quizzed"`
	Questions        []quiz.Question `json:"questions,omitempty" doc:"Question set"`
	CurrentIndex     int             `json:"current_index" doc:"Zero-based index of the next question"`
	RemainingSeconds int             `json:"remaining_seconds" doc:"Time left before the deadline"`
}

// QuizStatusOutput wraps the quiz status response for Huma.
type QuizStatusOutput struct {
	Body QuizStatusResponse
}

// AnswerQuizRequest is the request body for answering a question.
type AnswerQuizRequest struct {
	UserID string `json:"user_id" validate:"required" doc:"User ID"`
	Answer string `json:"answer" validate:"required" doc:"Selected option"`
}

// AnswerQuizInput wraps the answer request for Huma.
type AnswerQuizInput struct {
	Body AnswerQuizRequest
}

// AnswerQuizResponse reports the submission outcome. Result is present
// only once the quiz is complete.
type AnswerQuizResponse struct {
	Completed        bool         `json:"completed" doc:"Whether the quiz is now complete"`
	CurrentIndex     int          `json:"current_index" doc:"Zero-based index of the next question"`
	RemainingSeconds int          `json:"remaining_seconds" doc:"Time left before the deadline"`
	Result           *quiz.Result `json:"result,omitempty" doc:"Graded result, once complete"`
}

// AnswerQuizOutput wraps the answer response for Huma.
type AnswerQuizOutput struct {
	Body AnswerQuizResponse
}

// UserRequest is a request body carrying only a user ID.
type UserRequest struct {
	UserID string `json:"user_id" validate:"required" doc:"User ID"`
}

// UserInput wraps a user-only request for Huma.
type UserInput struct {
	Body UserRequest
}

// QuizResultOutput wraps a graded result for Huma.
type QuizResultOutput struct {
	Body quiz.Result
}

// CreateQuizSessionRequest is the request body for recording a session.
type CreateQuizSessionRequest struct {
	UserID         string `json:"user_id" validate:"required" doc:"User ID"`
	Platform       string `json:"platform" validate:"required" doc:"Platform quizzed"`
	Score          int    `json:"score" validate:"gte=0" doc:"Correct answers"`
	TotalQuestions int    `json:"total_questions" validate:"gte=1" doc:"Questions asked"`
}

// CreateQuizSessionInput wraps the record session request for Huma.
type CreateQuizSessionInput struct {
	Body CreateQuizSessionRequest
}

// QuizSessionOutput wraps one stored session for Huma.
type QuizSessionOutput struct {
	Body domain.QuizSession
}

// QuizHistoryInput identifies whose history to list.
type QuizHistoryInput struct {
	UserID string `path:"userId" doc:"User ID"`
}

// QuizHistoryResponse contains a user's sessions.
type QuizHistoryResponse struct {
	Sessions []domain.QuizSession `json:"sessions" doc:"Sessions, most recent first"`
}

// QuizHistoryOutput wraps the history response for Huma.
type QuizHistoryOutput struct {
	Body QuizHistoryResponse
}

// === Handlers ===

func (s *Server) handleStartQuiz(ctx context.Context, input *StartQuizInput) (*QuizStatusOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	status, err := s.services.Quiz.Start(ctx, input.Body.UserID, input.Body.Platform)
	if err != nil {
		return nil, err
	}
	return &QuizStatusOutput{Body: quizStatusResponse(status)}, nil
}

func (s *Server) handleAnswerQuiz(ctx context.Context, input *AnswerQuizInput) (*AnswerQuizOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	outcome, err := s.services.Quiz.Answer(ctx, input.Body.UserID, input.Body.Answer)
	if err != nil {
		return nil, err
	}
	return &AnswerQuizOutput{Body: AnswerQuizResponse{
		Completed:        outcome.Completed,
		CurrentIndex:     outcome.CurrentIndex,
		RemainingSeconds: int(outcome.Remaining / time.Second),
		Result:           outcome.Result,
	}}, nil
}

func (s *Server) handleCompleteQuiz(ctx context.Context, input *UserInput) (*QuizResultOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	result, err := s.services.Quiz.Complete(ctx, input.Body.UserID)
	if err != nil {
		return nil, err
	}
	return &QuizResultOutput{Body: *result}, nil
}

func (s *Server) handleResetQuiz(_ context.Context, input *UserInput) (*MessageOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	s.services.Quiz.Reset(input.Body.UserID)
	return &MessageOutput{Body: MessageResponse{Message: "Quiz reset"}}, nil
}

func (s *Server) handleCreateQuizSession(ctx context.Context, input *CreateQuizSessionInput) (*QuizSessionOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	session, err := s.services.Quiz.RecordSession(ctx,
		input.Body.UserID, input.Body.Platform, input.Body.Score, input.Body.TotalQuestions)
	if err != nil {
		return nil, err
	}
	return &QuizSessionOutput{Body: *session}, nil
}

func (s *Server) handleListQuizHistory(ctx context.Context, input *QuizHistoryInput) (*QuizHistoryOutput, error) {
	sessions, err := s.services.Quiz.History(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &QuizHistoryOutput{Body: QuizHistoryResponse{Sessions: sessions}}, nil
}

func quizStatusResponse(status *service.Status) QuizStatusResponse {
	return QuizStatusResponse{
		State:            status.State,
		Platform:         status.Platform,
		Questions:        status.Questions,
		CurrentIndex:     status.CurrentIndex,
		RemainingSeconds: int(status.Remaining / time.Second),
	}
}
