// Package search provides full-text search over the shortcut catalog
// using Bleve. The index is held in memory and rebuilt from the store at
// startup; the catalog is small enough that persistence buys nothing.
package search

import (
	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// Document is the indexed representation of a shortcut.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Keys        string `json:"keys"`
	Description string `json:"description,omitempty"`
	Platform    string `json:"platform"`
	Category    string `json:"category"`
	Position    int    `json:"position"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":       d.ID,
		"title":    d.Title,
		"keys":     d.Keys,
		"platform": d.Platform,
		"category": d.Category,
		"position": d.Position,
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	return m
}

// FromShortcut converts a domain shortcut to an index document.
// Position is the shortcut's place in catalog order, used as a
// tiebreak sort when scores are equal.
func FromShortcut(s domain.Shortcut, position int) *Document {
	return &Document{
		ID:          s.ID,
		Title:       s.Title,
		Keys:        s.Keys,
		Description: s.Description,
		Platform:    s.Platform,
		Category:    s.Category,
		Position:    position,
	}
}
