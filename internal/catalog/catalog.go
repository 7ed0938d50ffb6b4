// Package catalog holds the built-in shortcut reference data.
//
// The catalog is the seed set loaded into every storage backend on
// startup. Entries have stable IDs so favorites, notes, and tag
// associations survive restarts across backends.
package catalog

import "github.com/keydeckapp/keydeck-server/internal/domain"

// Platforms returns the supported platforms in display order.
func Platforms() []domain.Platform {
	return []domain.Platform{
		{ID: "phpstorm", Name: "PHPStorm", Icon: "fab fa-php", Color: "#9333ea"},
		{ID: "archlinux", Name: "Arch Linux", Icon: "fab fa-linux", Color: "#1677ff"},
		{ID: "ubuntu", Name: "Ubuntu", Icon: "fab fa-ubuntu", Color: "#e97317"},
	}
}

// Categories returns the shortcut categories in display order.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: "navigation", Name: "Navigation", Color: "#2563eb"},
		{ID: "editing", Name: "Editing", Color: "#16a34a"},
		{ID: "debugging", Name: "Debugging", Color: "#dc2626"},
		{ID: "system", Name: "System", Color: "#9333ea"},
		{ID: "window", Name: "Window Management", Color: "#e97317"},
	}
}

// PlatformByID returns the platform with the given ID.
func PlatformByID(id string) (domain.Platform, bool) {
	for _, p := range Platforms() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Platform{}, false
}

// CategoryByID returns the category with the given ID.
func CategoryByID(id string) (domain.Category, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// CategoryIDs returns the IDs of all categories.
func CategoryIDs() []string {
	cats := Categories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}
