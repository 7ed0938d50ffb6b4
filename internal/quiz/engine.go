// Package quiz implements the multiple-choice quiz engine.
//
// An Engine is a single-user state machine: Idle until Start, InProgress
// while questions are being answered, Completed once graded. It is not
// safe for concurrent use; callers serialize access (see service.QuizService).
package quiz

import (
	"math/rand"
	"time"

	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
)

const (
	// QuestionCount is the default number of questions per quiz.
	QuestionCount = 10
	// OptionCount is the number of choices per question, correct answer included.
	OptionCount = 4
	// Duration is the default wall-clock time allowed for a full quiz.
	Duration = 300 * time.Second
)

// Options overrides the engine defaults. Zero fields keep the defaults.
type Options struct {
	QuestionCount int
	TimeLimit     time.Duration
}

// State identifies where the engine is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateCompleted
)

// String returns the lowercase state name for logs and API payloads.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Question is one multiple-choice question. The prompt is the shortcut's
// action title; the options are key-combination strings, exactly one of
// which is correct.
type Question struct {
	ShortcutID  string   `json:"shortcut_id"`
	Prompt      string   `json:"prompt"`
	Description string   `json:"description"`
	Options     []string `json:"options"`

	answer string // correct key string, never serialized
}

// Answer returns the correct option for grading.
func (q Question) Answer() string {
	return q.answer
}

// Result is the graded outcome of a completed quiz.
type Result struct {
	Platform    string    `json:"platform"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percentage  int       `json:"percentage"`
	Expired     bool      `json:"expired"`
	CompletedAt time.Time `json:"completed_at"`
}

// Engine drives one quiz at a time. Zero value is unusable; use New.
type Engine struct {
	rng           *rand.Rand
	now           func() time.Time
	questionCount int
	timeLimit     time.Duration

	state     State
	platform  string
	questions []Question
	answers   []string
	current   int
	score     int
	deadline  time.Time
	result    *Result
}

// New creates an engine with the given randomness source and clock.
// Passing a seeded source makes question selection deterministic.
func New(rng *rand.Rand, now func() time.Time) *Engine {
	return NewWithOptions(rng, now, Options{})
}

// NewWithOptions creates an engine with custom limits.
func NewWithOptions(rng *rand.Rand, now func() time.Time, opts Options) *Engine {
	if now == nil {
		now = time.Now
	}
	if opts.QuestionCount < 1 {
		opts.QuestionCount = QuestionCount
	}
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = Duration
	}
	return &Engine{
		rng:           rng,
		now:           now,
		questionCount: opts.QuestionCount,
		timeLimit:     opts.TimeLimit,
	}
}

// CurrentState returns the engine's lifecycle state.
func (e *Engine) CurrentState() State {
	return e.state
}

// Platform returns the platform of the active or completed quiz.
func (e *Engine) Platform() string {
	return e.platform
}

// Questions returns the generated question set.
func (e *Engine) Questions() []Question {
	return e.questions
}

// CurrentIndex returns the zero-based index of the next unanswered question.
func (e *Engine) CurrentIndex() int {
	return e.current
}

// Remaining returns the time left before the deadline, clamped at zero.
func (e *Engine) Remaining() time.Duration {
	if e.state != StateInProgress {
		return 0
	}
	left := e.deadline.Sub(e.now())
	if left < 0 {
		return 0
	}
	return left
}

// Start begins a new quiz over the given platform's shortcuts, replacing
// any previous quiz. The pool must contain at least questionCount entries
// for the platform or ErrInsufficientData is returned and the engine
// stays in its prior state.
func (e *Engine) Start(platform string, pool []domain.Shortcut) error {
	var eligible []domain.Shortcut
	for _, s := range pool {
		if s.Platform == platform {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) < e.questionCount {
		return errors.InsufficientDataf(
			"platform %q has %d shortcuts, need at least %d for a quiz",
			platform, len(eligible), e.questionCount)
	}

	questions, err := e.buildQuestions(eligible)
	if err != nil {
		return err
	}

	e.state = StateInProgress
	e.platform = platform
	e.questions = questions
	e.answers = make([]string, 0, e.questionCount)
	e.current = 0
	e.score = 0
	e.deadline = e.now().Add(e.timeLimit)
	e.result = nil
	return nil
}

// buildQuestions samples questionCount shortcuts without replacement and
// attaches three distractor key strings to each, drawn from the other
// eligible shortcuts' keys and never equal to the correct answer.
func (e *Engine) buildQuestions(eligible []domain.Shortcut) ([]Question, error) {
	picked := make([]domain.Shortcut, len(eligible))
	copy(picked, eligible)
	e.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:e.questionCount]

	questions := make([]Question, 0, e.questionCount)
	for _, s := range picked {
		distractors := e.sampleDistractors(eligible, s)
		if len(distractors) < OptionCount-1 {
			return nil, errors.InsufficientDataf(
				"not enough distinct key combinations on platform %q", s.Platform)
		}

		options := append(distractors, s.Keys)
		e.rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, Question{
			ShortcutID:  s.ID,
			Prompt:      s.Title,
			Description: s.Description,
			Options:     options,
			answer:      s.Keys,
		})
	}
	return questions, nil
}

func (e *Engine) sampleDistractors(eligible []domain.Shortcut, correct domain.Shortcut) []string {
	seen := map[string]bool{correct.Keys: true}
	var candidates []string
	for _, s := range eligible {
		if s.ID == correct.ID || seen[s.Keys] {
			continue
		}
		seen[s.Keys] = true
		candidates = append(candidates, s.Keys)
	}
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > OptionCount-1 {
		candidates = candidates[:OptionCount-1]
	}
	return candidates
}

// Submit records the answer for the current question and advances. The
// final submission grades the quiz and returns the result. If the
// deadline has passed the quiz is force-completed from the answers given
// so far and the expired result is returned without recording answer.
func (e *Engine) Submit(answer string) (*Result, error) {
	switch e.state {
	case StateIdle:
		return nil, errors.Conflict("no quiz in progress")
	case StateCompleted:
		return e.result, nil
	}

	if e.now().After(e.deadline) {
		return e.complete(true), nil
	}
	if answer == "" {
		return nil, errors.Validation("answer must not be empty")
	}

	e.answers = append(e.answers, answer)
	if answer == e.questions[e.current].answer {
		e.score++
	}
	e.current++

	if e.current >= len(e.questions) {
		return e.complete(false), nil
	}
	return nil, nil
}

// Complete grades the quiz from the recorded answers. Completing an
// already-completed quiz returns the stored result unchanged, so a timer
// firing alongside the final submission is harmless.
func (e *Engine) Complete() (*Result, error) {
	switch e.state {
	case StateIdle:
		return nil, errors.Conflict("no quiz in progress")
	case StateCompleted:
		return e.result, nil
	}
	return e.complete(e.now().After(e.deadline)), nil
}

// complete recomputes the score from the answer history rather than
// trusting the incremental counter.
func (e *Engine) complete(expired bool) *Result {
	score := 0
	for i, a := range e.answers {
		if i < len(e.questions) && a == e.questions[i].answer {
			score++
		}
	}

	total := len(e.questions)
	session := &domain.QuizSession{Score: score, TotalQuestions: total}
	e.result = &Result{
		Platform:    e.platform,
		Score:       score,
		Total:       total,
		Percentage:  session.Percentage(),
		Expired:     expired,
		CompletedAt: e.now(),
	}
	e.state = StateCompleted
	return e.result
}

// Reset discards all quiz state and returns the engine to Idle.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.platform = ""
	e.questions = nil
	e.answers = nil
	e.current = 0
	e.score = 0
	e.deadline = time.Time{}
	e.result = nil
}
