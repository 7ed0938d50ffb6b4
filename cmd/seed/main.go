// Package main provides a tool to seed a KeyDeck database with demo data.
//
// This seeds the shortcut catalog into an on-disk backend and optionally
// creates a demo user with favorites, notes, tags, and quiz history so the
// UI has something to show on first run.
//
// Usage:
//
//	go run ./cmd/seed -backend sqlite -data ~/.keydeck
//	go run ./cmd/seed -backend badger -data ~/.keydeck -demo
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/keydeckapp/keydeck-server/internal/catalog"
	"github.com/keydeckapp/keydeck-server/internal/domain"
	"github.com/keydeckapp/keydeck-server/internal/id"
	"github.com/keydeckapp/keydeck-server/internal/store"
	"github.com/keydeckapp/keydeck-server/internal/store/sqlite"
)

var (
	backend  = flag.String("backend", "sqlite", "Storage backend: sqlite or badger")
	dataPath = flag.String("data", "", "Data directory (default: ~/.keydeck)")
	demo     = flag.Bool("demo", false, "Also create demo user data")
	demoUser = flag.String("demo-user", "demo-user", "User ID for demo data")
)

func main() {
	flag.Parse()

	path := *dataPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		path = filepath.Join(home, ".keydeck")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	var (
		st  store.Store
		err error
	)
	switch *backend {
	case store.BackendSQLite:
		st, err = sqlite.Open(filepath.Join(path, "keydeck.db"), nil)
	case store.BackendBadger:
		st, err = store.NewDocStore(filepath.Join(path, "badger"), nil)
	default:
		log.Fatalf("Unknown backend %q (want sqlite or badger)", *backend)
	}
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	if err := store.EnsureSeeded(ctx, st, nil); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	shortcuts, err := st.ListShortcuts(ctx)
	if err != nil {
		log.Fatalf("Failed to list shortcuts: %v", err)
	}
	fmt.Printf("Catalog ready: %d shortcuts\n", len(shortcuts))
	for _, platform := range catalog.Platforms() {
		count, err := st.CountShortcutsByPlatform(ctx, platform.ID)
		if err != nil {
			log.Fatalf("Failed to count shortcuts: %v", err)
		}
		fmt.Printf("  %-10s %d\n", platform.ID, count)
	}

	if *demo {
		seedDemoUser(ctx, st, shortcuts)
	}
}

// seedDemoUser creates favorites, a note, a tag, and quiz history for
// the demo user. Everything here is idempotent except tag creation,
// which is skipped when the tag already exists.
func seedDemoUser(ctx context.Context, st store.Store, shortcuts []domain.Shortcut) {
	userID := *demoUser
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, s := range shortcuts[:5] {
		if err := st.AddFavorite(ctx, userID, s.ID); err != nil {
			log.Fatalf("Failed to add favorite: %v", err)
		}
	}
	fmt.Printf("Added 5 favorites for %s\n", userID)

	now := time.Now().UTC()
	note := &domain.Note{
		UserID:     userID,
		ShortcutID: shortcuts[0].ID,
		Text:       "My most used shortcut",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := st.SaveNote(ctx, note); err != nil {
		log.Fatalf("Failed to save note: %v", err)
	}

	tag := &domain.Tag{
		ID:    id.MustGenerate("tag"),
		Name:  "essentials",
		Color: "#9333ea",
	}
	switch err := st.CreateTag(ctx, tag); err {
	case nil:
		for _, s := range shortcuts[:3] {
			assoc := &domain.ShortcutTag{UserID: userID, ShortcutID: s.ID, TagID: tag.ID}
			if err := st.AddShortcutTag(ctx, assoc); err != nil {
				log.Fatalf("Failed to tag shortcut: %v", err)
			}
		}
		fmt.Println("Created essentials tag on 3 shortcuts")
	default:
		fmt.Printf("Skipping tag creation: %v\n", err)
	}

	for _, platform := range catalog.Platforms() {
		total := 10
		session := &domain.QuizSession{
			ID:             id.MustGenerate("quiz"),
			UserID:         userID,
			Platform:       platform.ID,
			Score:          rng.Intn(total + 1),
			TotalQuestions: total,
			CompletedAt:    now.Add(-time.Duration(rng.Intn(72)) * time.Hour),
		}
		if err := st.CreateQuizSession(ctx, session); err != nil {
			log.Fatalf("Failed to record quiz session: %v", err)
		}
	}
	fmt.Printf("Recorded %d quiz sessions for %s\n", len(catalog.Platforms()), userID)
}
