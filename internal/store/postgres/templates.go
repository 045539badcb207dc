// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package postgres implements the relational storage backends over
// database/sql with the pgx driver. One row per record; the templates table
// stores variables and tags as JSONB columns.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"promptpress/internal/models"
	"promptpress/internal/store"
)

// TemplateStore reads the template catalog from the templates table.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a TemplateStore with the given connection pool.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// ListIDs returns all template ids. A query failure is logged and degrades
// to an empty list — the catalog page renders empty rather than erroring.
func (s *TemplateStore) ListIDs(ctx context.Context) []string {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM templates`)
	if err != nil {
		slog.Error("list template ids", "error", err)
		return nil
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			slog.Error("scan template id", "error", err)
			return nil
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list template ids", "error", err)
		return nil
	}
	return ids
}

// ListMetadata returns catalog metadata for all templates, bodies excluded.
// Degrades to an empty list on query failure; rows that fail minimal-field
// validation are skipped.
func (s *TemplateStore) ListMetadata(ctx context.Context) []models.TemplateMeta {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, category, emoji, tags, variables
		FROM templates
	`)
	if err != nil {
		slog.Error("list template metadata", "error", err)
		return nil
	}
	defer rows.Close()

	var metas []models.TemplateMeta
	for rows.Next() {
		meta, err := scanTemplateMeta(rows)
		if err != nil {
			slog.Error("scan template metadata", "error", err)
			return nil
		}
		if meta.ID == "" || meta.Title == "" || meta.Variables == nil {
			slog.Warn("template row missing required fields, skipping", "id", meta.ID)
			continue
		}
		metas = append(metas, *meta)
	}
	if err := rows.Err(); err != nil {
		slog.Error("list template metadata", "error", err)
		return nil
	}
	return metas
}

// Get returns the full template for id, or store.ErrNotFound when the row is
// absent or fails minimal-field validation.
func (s *TemplateStore) Get(ctx context.Context, id string) (*models.Template, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, category, emoji, tags, variables, content
		FROM templates WHERE id = $1
	`, id)

	var (
		t             models.Template
		tagsJSON      []byte
		variablesJSON []byte
	)
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &t.Emoji, &tagsJSON, &variablesJSON, &t.Content)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template %s: %w", id, err)
	}

	if err := json.Unmarshal(tagsJSON, &t.Tags); err != nil {
		slog.Warn("template tags column unparseable, treating as absent", "id", id, "error", err)
		return nil, store.ErrNotFound
	}
	if err := json.Unmarshal(variablesJSON, &t.Variables); err != nil {
		slog.Warn("template variables column unparseable, treating as absent", "id", id, "error", err)
		return nil, store.ErrNotFound
	}

	if !t.Complete() {
		slog.Warn("template row missing required fields, treating as absent", "id", id)
		return nil, store.ErrNotFound
	}
	return &t, nil
}

// scanTemplateMeta scans a metadata row, decoding the JSONB columns.
func scanTemplateMeta(scanner interface{ Scan(...any) error }) (*models.TemplateMeta, error) {
	var (
		meta          models.TemplateMeta
		tagsJSON      []byte
		variablesJSON []byte
	)
	if err := scanner.Scan(&meta.ID, &meta.Title, &meta.Description, &meta.Category, &meta.Emoji, &tagsJSON, &variablesJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tagsJSON, &meta.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if err := json.Unmarshal(variablesJSON, &meta.Variables); err != nil {
		return nil, fmt.Errorf("decode variables: %w", err)
	}
	return &meta, nil
}
