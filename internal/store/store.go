// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store defines the storage contracts for the template catalog and
// saved prompts, shared by the flat-file and PostgreSQL backends. The backend
// is chosen once at process start by configuration; callers only ever see
// these interfaces.
package store

import (
	"context"
	"errors"

	"promptpress/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist. A
	// record failing minimal-field validation is reported the same way.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDocument is returned by Create when the submitted document
	// is missing required frontmatter fields (title, templateId).
	ErrInvalidDocument = errors.New("title and templateId frontmatter fields are required")

	// ErrPreviewMode is returned by mutating operations when the server runs
	// in preview mode: the request is accepted but nothing is applied.
	ErrPreviewMode = errors.New("preview mode: mutation not applied")
)

// TemplateStore provides read-only access to the template catalog.
// Both backends expose identical logical results; only latency and the
// source of the data differ.
type TemplateStore interface {
	// ListIDs returns all known template identifiers, in no guaranteed
	// order. Backend trouble (missing directory, query failure) degrades to
	// an empty list and is logged, never surfaced.
	ListIDs(ctx context.Context) []string

	// ListMetadata returns catalog metadata for all templates, bodies
	// excluded. Degrades to an empty list on backend trouble.
	ListMetadata(ctx context.Context) []models.TemplateMeta

	// Get returns the full template or ErrNotFound when the id does not
	// resolve or the record lacks required fields.
	Get(ctx context.Context, id string) (*models.Template, error)
}

// SavedPromptStore owns all saved-prompt records. Only the persistence
// gateway mutates through it; everything else holds transient copies.
type SavedPromptStore interface {
	ListIDs(ctx context.Context) []string

	// ListMetadata returns listing metadata sorted by creation time,
	// most recent first. The ordering is part of the contract — it drives
	// the sidebar in the presentation layer.
	ListMetadata(ctx context.Context) []models.SavedPromptMeta

	Get(ctx context.Context, id string) (*models.SavedPrompt, error)

	// Create parses a combined frontmatter+body document and persists a new
	// record. Returns ErrInvalidDocument when title or templateId is
	// missing. CreatedAt defaults to the current time if not supplied.
	Create(ctx context.Context, document string) (*models.SavedPrompt, error)

	// UpdateRating rewrites only the rating field, leaving content and the
	// rest of the frontmatter untouched.
	UpdateRating(ctx context.Context, id string, rating int) error

	Delete(ctx context.Context, id string) error
}
