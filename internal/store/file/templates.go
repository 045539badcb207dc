// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package file implements the flat-file storage backends: one Markdown file
// per record (YAML frontmatter + body), filename minus extension as the id.
package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"promptpress/internal/frontmatter"
	"promptpress/internal/models"
	"promptpress/internal/store"
)

const ext = ".md"

// TemplateStore reads the template catalog from a directory of Markdown
// files. The catalog is read-only; files are re-read on every call so edits
// on disk show up without a restart.
type TemplateStore struct {
	dir string
}

// NewTemplateStore returns a template store rooted at dir. The directory is
// not required to exist — a missing catalog yields an empty listing.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// ListIDs returns the ids of all template files in the directory.
// A missing directory silently yields an empty list.
func (s *TemplateStore) ListIDs(ctx context.Context) []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("read templates dir", "dir", s.dir, "error", err)
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

// ListMetadata returns catalog metadata for every readable, complete
// template. Unreadable or incomplete records are skipped and logged.
func (s *TemplateStore) ListMetadata(ctx context.Context) []models.TemplateMeta {
	var metas []models.TemplateMeta
	for _, id := range s.ListIDs(ctx) {
		t, err := s.Get(ctx, id)
		if err != nil {
			slog.Warn("skipping template", "id", id, "error", err)
			continue
		}
		metas = append(metas, t.TemplateMeta)
	}
	return metas
}

// Get reads and parses a single template file. Returns store.ErrNotFound for
// a missing file, an unparseable header, or a record missing required fields.
func (s *TemplateStore) Get(ctx context.Context, id string) (*models.Template, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, id+ext))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("read template file", "id", id, "error", err)
		}
		return nil, store.ErrNotFound
	}

	var t models.Template
	body, err := frontmatter.Decode(string(raw), &t.TemplateMeta)
	if err != nil {
		slog.Warn("template frontmatter unparseable, treating as absent", "id", id, "error", err)
		return nil, store.ErrNotFound
	}

	// The filename is the canonical id; the frontmatter copy is advisory.
	t.ID = id
	t.Content = body

	if !t.Complete() {
		slog.Warn("template missing required fields, treating as absent", "id", id)
		return nil, store.ErrNotFound
	}
	return &t, nil
}
