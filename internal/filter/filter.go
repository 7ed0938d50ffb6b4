// Package filter implements the catalog filter engine.
//
// Apply is a pure function over an in-memory catalog slice. All four
// dimensions (platform, categories, search term, favorites) are
// conjunctive and the output preserves catalog order.
package filter

import (
	"strings"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// State describes one filter pass.
//
// Categories is a set: a shortcut passes when its category is a member.
// An empty non-nil set matches nothing; a nil set matches everything.
// SearchTerm is matched case-insensitively as a substring of title,
// description, or keys; the empty string matches everything.
type State struct {
	Platform      string
	Categories    map[string]bool
	SearchTerm    string
	FavoritesOnly bool
	FavoriteIDs   map[string]bool
}

// Apply filters the catalog by state. It never modifies its input and
// always returns a non-nil slice.
func Apply(catalog []domain.Shortcut, state State) []domain.Shortcut {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))

	out := make([]domain.Shortcut, 0, len(catalog))
	for _, s := range catalog {
		if state.Platform != "" && s.Platform != state.Platform {
			continue
		}
		if state.Categories != nil && !state.Categories[s.Category] {
			continue
		}
		if term != "" && !matches(s, term) {
			continue
		}
		if state.FavoritesOnly && !state.FavoriteIDs[s.ID] {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matches(s domain.Shortcut, term string) bool {
	return strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Description), term) ||
		strings.Contains(strings.ToLower(s.Keys), term)
}

// NewCategorySet builds a category set from a list of IDs. A nil input
// yields a nil set, which Apply treats as "all"; a non-nil empty input
// yields an empty set, which matches nothing.
func NewCategorySet(ids []string) map[string]bool {
	if ids == nil {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// NewIDSet builds a membership set of shortcut IDs.
func NewIDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
