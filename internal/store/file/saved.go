// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"promptpress/internal/frontmatter"
	"promptpress/internal/models"
	"promptpress/internal/slug"
	"promptpress/internal/store"
)

// SavedPromptStore persists saved prompts as one Markdown file per record.
type SavedPromptStore struct {
	dir string
}

// NewSavedPromptStore returns a saved-prompt store rooted at dir, creating
// the directory if it does not exist.
func NewSavedPromptStore(dir string) (*SavedPromptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create saved dir: %w", err)
	}
	return &SavedPromptStore{dir: dir}, nil
}

func (s *SavedPromptStore) path(id string) string {
	return filepath.Join(s.dir, id+ext)
}

// ListIDs returns the ids of all saved prompt files, in directory order.
func (s *SavedPromptStore) ListIDs(ctx context.Context) []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("read saved dir", "dir", s.dir, "error", err)
		}
		return nil
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ext))
	}
	return ids
}

// ListMetadata returns listing metadata for all saved prompts sorted by
// creation time, most recent first. Records that fail to parse are skipped.
func (s *SavedPromptStore) ListMetadata(ctx context.Context) []models.SavedPromptMeta {
	var metas []models.SavedPromptMeta
	for _, id := range s.ListIDs(ctx) {
		p, err := s.Get(ctx, id)
		if err != nil {
			slog.Warn("skipping saved prompt", "id", id, "error", err)
			continue
		}
		metas = append(metas, models.SavedPromptMeta{
			ID:        p.ID,
			Title:     p.Frontmatter.Title,
			CreatedAt: p.Frontmatter.CreatedAt,
		})
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas
}

// Get reads and parses a single saved prompt file.
func (s *SavedPromptStore) Get(ctx context.Context, id string) (*models.SavedPrompt, error) {
	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read saved prompt %s: %w", id, err)
	}

	p := &models.SavedPrompt{ID: id}
	body, err := frontmatter.Decode(string(raw), &p.Frontmatter)
	if err != nil {
		return nil, fmt.Errorf("parse saved prompt %s: %w", id, err)
	}
	p.Content = body
	return p, nil
}

// Create parses the submitted document, derives a fresh id from its title,
// and writes the record as a new file.
func (s *SavedPromptStore) Create(ctx context.Context, document string) (*models.SavedPrompt, error) {
	fm, body, err := store.ParseDocument(document, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	id := slug.NewID(fm.Title)
	out, err := frontmatter.Encode(fm, body)
	if err != nil {
		return nil, fmt.Errorf("serialize saved prompt: %w", err)
	}
	if err := os.WriteFile(s.path(id), []byte(out), 0o644); err != nil {
		return nil, fmt.Errorf("write saved prompt %s: %w", id, err)
	}

	return &models.SavedPrompt{ID: id, Frontmatter: fm, Content: body}, nil
}

// UpdateRating rewrites only the rating field of an existing record. The file
// is re-serialized to a temporary file and renamed into place, so a
// concurrent reader never observes a partial write.
func (s *SavedPromptStore) UpdateRating(ctx context.Context, id string, rating int) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p.Frontmatter.Rating = &rating
	out, err := frontmatter.Encode(p.Frontmatter, p.Content)
	if err != nil {
		return fmt.Errorf("serialize saved prompt %s: %w", id, err)
	}

	tmp, err := os.CreateTemp(s.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", id, err)
	}
	if _, err := tmp.Write([]byte(out)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file for %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), s.path(id)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace saved prompt %s: %w", id, err)
	}
	return nil
}

// Delete removes a saved prompt file. Deleting an absent record reports
// store.ErrNotFound rather than failing hard.
func (s *SavedPromptStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("delete saved prompt %s: %w", id, err)
	}
	return nil
}
