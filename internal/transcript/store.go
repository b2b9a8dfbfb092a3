// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transcript persists agent conversations under
// ~/.pelorus/transcripts/ as one JSON file per transcript, and renders
// saved transcripts as Markdown for export.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pelorus-ai/pelorus-tui/internal/config"
	"github.com/pelorus-ai/pelorus-tui/internal/model"
	"github.com/pelorus-ai/pelorus-tui/internal/util"
)

// ErrNotFound is returned when a transcript id has no file.
var ErrNotFound = errors.New("transcript not found")

// DefaultMaxTranscripts bounds the store; oldest are pruned past it.
const DefaultMaxTranscripts = 100

// =============================================================================
// TYPES
// =============================================================================

// Transcript is a persisted conversation.
type Transcript struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []*model.Message `json:"messages"`
}

// Meta describes a stored transcript for listings.
type Meta struct {
	ID           string    `json:"id"`
	Summary      string    `json:"summary"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// Store reads and writes transcripts in a single directory.
type Store struct {
	// BaseDir is the transcript directory, default ~/.pelorus/transcripts.
	BaseDir string

	// MaxTranscripts caps the store; 0 disables pruning.
	MaxTranscripts int
}

// NewStore creates a store rooted in the user's config directory.
func NewStore() (*Store, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(filepath.Join(dir, "transcripts"))
}

// NewStoreWithDir creates a store rooted at baseDir.
func NewStoreWithDir(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}
	return &Store{BaseDir: baseDir, MaxTranscripts: DefaultMaxTranscripts}, nil
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

// Save writes one transcript built from the given messages and returns its
// id. An empty id assigns a fresh one; reusing an id overwrites in place.
func (s *Store) Save(id string, messages []*model.Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("nothing to save")
	}
	t := &Transcript{
		ID:        id,
		Summary:   summarize(messages),
		UpdatedAt: time.Now(),
		Messages:  messages,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
		t.CreatedAt = t.UpdatedAt
	} else if prev, err := s.Load(t.ID); err == nil {
		t.CreatedAt = prev.CreatedAt
	} else {
		t.CreatedAt = t.UpdatedAt
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	if err := util.AtomicWriteFile(s.filePath(t.ID), data, 0o600); err != nil {
		return "", err
	}

	if s.MaxTranscripts > 0 {
		s.prune()
	}
	return t.ID, nil
}

// Load reads one transcript by id.
func (s *Store) Load(id string) (*Transcript, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("corrupt transcript %s: %w", id, err)
	}
	return &t, nil
}

// List returns metadata for every stored transcript, newest first.
func (s *Store) List() ([]Meta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		return nil, err
	}

	metas := make([]Meta, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		t, err := s.Load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		metas = append(metas, Meta{
			ID:           t.ID,
			Summary:      t.Summary,
			UpdatedAt:    t.UpdatedAt,
			MessageCount: len(t.Messages),
		})
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
	return metas, nil
}

// Delete removes one transcript by id.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// prune removes the oldest transcripts past the cap.
func (s *Store) prune() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxTranscripts {
		return
	}
	for _, meta := range metas[s.MaxTranscripts:] {
		s.Delete(meta.ID)
	}
}

func (s *Store) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// summarize builds a one-line summary from the first user message.
func summarize(messages []*model.Message) string {
	for _, msg := range messages {
		if msg.Role == model.RoleUser && msg.Query != "" {
			return util.TruncateRunes(util.OneLine(msg.Query), 50)
		}
	}
	return "Conversation"
}
