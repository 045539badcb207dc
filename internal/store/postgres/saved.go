// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promptpress/internal/models"
	"promptpress/internal/store"
)

// SavedPromptStore persists saved prompts as rows in the prompts table.
type SavedPromptStore struct {
	db *sql.DB
}

// NewSavedPromptStore creates a SavedPromptStore with the given connection pool.
func NewSavedPromptStore(db *sql.DB) *SavedPromptStore {
	return &SavedPromptStore{db: db}
}

// ListIDs returns all saved prompt ids. Query failure degrades to an empty
// list and is logged.
func (s *SavedPromptStore) ListIDs(ctx context.Context) []string {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM prompts`)
	if err != nil {
		slog.Error("list saved prompt ids", "error", err)
		return nil
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			slog.Error("scan saved prompt id", "error", err)
			return nil
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list saved prompt ids", "error", err)
		return nil
	}
	return ids
}

// ListMetadata returns listing metadata ordered by creation time descending.
// The ordering is done in SQL so any insertion order yields the same contract.
func (s *SavedPromptStore) ListMetadata(ctx context.Context) []models.SavedPromptMeta {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at
		FROM prompts
		ORDER BY created_at DESC
	`)
	if err != nil {
		slog.Error("list saved prompt metadata", "error", err)
		return nil
	}
	defer rows.Close()

	var metas []models.SavedPromptMeta
	for rows.Next() {
		var m models.SavedPromptMeta
		if err := rows.Scan(&m.ID, &m.Title, &m.CreatedAt); err != nil {
			slog.Error("scan saved prompt metadata", "error", err)
			return nil
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list saved prompt metadata", "error", err)
		return nil
	}
	return metas
}

// Get returns the full record for id, or store.ErrNotFound.
func (s *SavedPromptStore) Get(ctx context.Context, id string) (*models.SavedPrompt, error) {
	p := &models.SavedPrompt{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, created_at, rating, template_id, content
		FROM prompts WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Frontmatter.Title, &p.Frontmatter.CreatedAt,
		&p.Frontmatter.Rating, &p.Frontmatter.TemplateID, &p.Content,
	)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved prompt %s: %w", id, err)
	}
	return p, nil
}

// Create parses the submitted document and inserts a new row with a
// generated id.
func (s *SavedPromptStore) Create(ctx context.Context, document string) (*models.SavedPrompt, error) {
	fm, body, err := store.ParseDocument(document, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	p := &models.SavedPrompt{}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO prompts (id, title, created_at, rating, template_id, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, created_at, rating, template_id, content
	`, uuid.NewString(), fm.Title, fm.CreatedAt, fm.Rating, fm.TemplateID, body).Scan(
		&p.ID, &p.Frontmatter.Title, &p.Frontmatter.CreatedAt,
		&p.Frontmatter.Rating, &p.Frontmatter.TemplateID, &p.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("create saved prompt: %w", err)
	}
	return p, nil
}

// UpdateRating is a single column-scoped update; content and the remaining
// columns are untouched.
func (s *SavedPromptStore) UpdateRating(ctx context.Context, id string, rating int) error {
	result, err := s.db.ExecContext(ctx, `UPDATE prompts SET rating = $1 WHERE id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("update rating for %s: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes a row by id, reporting store.ErrNotFound for absent records.
func (s *SavedPromptStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete saved prompt %s: %w", id, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}
