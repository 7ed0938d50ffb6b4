package quiz

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/errors"
)

func newTestEngine(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)), nil)
}

// fakeClock returns a clock that can be advanced by tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestStart_InsufficientShortcuts(t *testing.T) {
	pool := make([]domain.Shortcut, 0, QuestionCount-1)
	for i := 0; i < QuestionCount-1; i++ {
		pool = append(pool, domain.Shortcut{
			ID:       fmt.Sprintf("sc-%d", i),
			Title:    fmt.Sprintf("Action %d", i),
			Keys:     fmt.Sprintf("Ctrl+%d", i),
			Platform: "phpstorm",
		})
	}

	e := newTestEngine(1)
	err := e.Start("phpstorm", pool)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInsufficientData))
	assert.Equal(t, StateIdle, e.CurrentState())
}

func TestStart_IgnoresOtherPlatforms(t *testing.T) {
	e := newTestEngine(1)
	err := e.Start("ubuntu", catalog.Shortcuts())
	require.NoError(t, err)

	for _, q := range e.Questions() {
		assert.True(t, q.ShortcutID != "")
	}
	assert.Len(t, e.Questions(), QuestionCount)
}

func TestStart_QuestionShape(t *testing.T) {
	e := newTestEngine(42)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	seen := map[string]bool{}
	for _, q := range e.Questions() {
		require.Len(t, q.Options, OptionCount)
		assert.Contains(t, q.Options, q.Answer())

		// Options must be distinct.
		opts := map[string]bool{}
		for _, o := range q.Options {
			assert.False(t, opts[o], "duplicate option %q", o)
			opts[o] = true
		}

		// Sampling is without replacement.
		assert.False(t, seen[q.ShortcutID], "shortcut %s picked twice", q.ShortcutID)
		seen[q.ShortcutID] = true
	}
}

func TestStart_DeterministicWithSeed(t *testing.T) {
	a := newTestEngine(7)
	b := newTestEngine(7)
	require.NoError(t, a.Start("archlinux", catalog.Shortcuts()))
	require.NoError(t, b.Start("archlinux", catalog.Shortcuts()))

	require.Len(t, b.Questions(), len(a.Questions()))
	for i := range a.Questions() {
		assert.Equal(t, a.Questions()[i].ShortcutID, b.Questions()[i].ShortcutID)
		assert.Equal(t, a.Questions()[i].Options, b.Questions()[i].Options)
	}
}

func TestSubmit_FullRunAllCorrect(t *testing.T) {
	e := newTestEngine(3)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	var result *Result
	for _, q := range e.Questions() {
		var err error
		result, err = e.Submit(q.Answer())
		require.NoError(t, err)
	}

	require.NotNil(t, result)
	assert.Equal(t, QuestionCount, result.Score)
	assert.Equal(t, QuestionCount, result.Total)
	assert.Equal(t, 100, result.Percentage)
	assert.False(t, result.Expired)
	assert.Equal(t, StateCompleted, e.CurrentState())
}

func TestSubmit_ScoresOnlyCorrectAnswers(t *testing.T) {
	e := newTestEngine(3)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	questions := e.Questions()
	var result *Result
	for i, q := range questions {
		answer := q.Answer()
		if i%2 == 1 {
			// Pick a wrong option.
			for _, o := range q.Options {
				if o != q.Answer() {
					answer = o
					break
				}
			}
		}
		var err error
		result, err = e.Submit(answer)
		require.NoError(t, err)
	}

	require.NotNil(t, result)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 50, result.Percentage)
}

func TestSubmit_EmptyAnswerRejected(t *testing.T) {
	e := newTestEngine(3)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	_, err := e.Submit("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
	assert.Equal(t, 0, e.CurrentIndex())
}

func TestSubmit_WithoutStart(t *testing.T) {
	e := newTestEngine(3)
	_, err := e.Submit("Ctrl+C")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestSubmit_DeadlineExpiryForcesCompletion(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	e := New(rand.New(rand.NewSource(5)), clock.now)
	require.NoError(t, e.Start("ubuntu", catalog.Shortcuts()))

	first := e.Questions()[0]
	_, err := e.Submit(first.Answer())
	require.NoError(t, err)

	clock.advance(Duration + time.Second)

	result, err := e.Submit(e.Questions()[1].Answer())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Expired)
	assert.Equal(t, 1, result.Score, "late answer must not count")
	assert.Equal(t, StateCompleted, e.CurrentState())
}

func TestComplete_Idempotent(t *testing.T) {
	e := newTestEngine(9)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	_, err := e.Submit(e.Questions()[0].Answer())
	require.NoError(t, err)

	first, err := e.Complete()
	require.NoError(t, err)
	second, err := e.Complete()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, first.Score)
	assert.Equal(t, QuestionCount, first.Total)
}

func TestComplete_RecomputesFromHistory(t *testing.T) {
	e := newTestEngine(9)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))

	// Tamper with the incremental counter; grading must ignore it.
	_, err := e.Submit(e.Questions()[0].Answer())
	require.NoError(t, err)
	e.score = 99

	result, err := e.Complete()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
}

func TestComplete_WithoutStart(t *testing.T) {
	e := newTestEngine(9)
	_, err := e.Complete()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestReset(t *testing.T) {
	e := newTestEngine(11)
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))
	_, err := e.Submit(e.Questions()[0].Answer())
	require.NoError(t, err)

	e.Reset()

	assert.Equal(t, StateIdle, e.CurrentState())
	assert.Empty(t, e.Questions())
	assert.Zero(t, e.Remaining())
}

func TestNewWithOptions_Overrides(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	e := NewWithOptions(rand.New(rand.NewSource(5)), clock.now, Options{
		QuestionCount: 5,
		TimeLimit:     60 * time.Second,
	})
	require.NoError(t, e.Start("ubuntu", catalog.Shortcuts()))

	assert.Len(t, e.Questions(), 5)
	assert.Equal(t, 60*time.Second, e.Remaining())
}

func TestNewWithOptions_ZeroKeepsDefaults(t *testing.T) {
	e := NewWithOptions(rand.New(rand.NewSource(5)), nil, Options{})
	require.NoError(t, e.Start("phpstorm", catalog.Shortcuts()))
	assert.Len(t, e.Questions(), QuestionCount)
}

func TestRemaining(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	e := New(rand.New(rand.NewSource(5)), clock.now)
	require.NoError(t, e.Start("ubuntu", catalog.Shortcuts()))

	assert.Equal(t, Duration, e.Remaining())
	clock.advance(100 * time.Second)
	assert.Equal(t, 200*time.Second, e.Remaining())
	clock.advance(300 * time.Second)
	assert.Equal(t, time.Duration(0), e.Remaining())
}
