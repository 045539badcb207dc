// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gateway orchestrates saved-prompt mutations. Every successful
// create, rating update, or delete also invalidates the downstream cached
// views — a stale listing after a mutation is a correctness defect, so the
// invalidation lives here rather than in individual handlers.
package gateway

import (
	"context"

	"promptpress/internal/models"
	"promptpress/internal/store"
)

// ViewInvalidator is the slice of the view cache the gateway needs.
type ViewInvalidator interface {
	InvalidateSavedList(ctx context.Context)
	InvalidateSaved(ctx context.Context, id string)
}

// Gateway is the single write path for saved prompts.
type Gateway struct {
	prompts store.SavedPromptStore
	views   ViewInvalidator
}

// New creates a Gateway over the given store and view cache.
func New(prompts store.SavedPromptStore, views ViewInvalidator) *Gateway {
	return &Gateway{prompts: prompts, views: views}
}

// SavePrompt persists a new saved prompt and invalidates the listing view
// plus the (future) detail view of the new record. Errors — including
// store.ErrPreviewMode — pass through untranslated for the handler to map.
func (g *Gateway) SavePrompt(ctx context.Context, document string) (*models.SavedPrompt, error) {
	created, err := g.prompts.Create(ctx, document)
	if err != nil {
		return nil, err
	}

	g.views.InvalidateSavedList(ctx)
	g.views.InvalidateSaved(ctx, created.ID)
	return created, nil
}

// UpdateRating rewrites the rating of an existing record and invalidates its
// cached views.
func (g *Gateway) UpdateRating(ctx context.Context, id string, rating int) error {
	if err := g.prompts.UpdateRating(ctx, id, rating); err != nil {
		return err
	}

	g.views.InvalidateSavedList(ctx)
	g.views.InvalidateSaved(ctx, id)
	return nil
}

// DeletePrompt removes a record and invalidates its cached views.
func (g *Gateway) DeletePrompt(ctx context.Context, id string) error {
	if err := g.prompts.Delete(ctx, id); err != nil {
		return err
	}

	g.views.InvalidateSavedList(ctx)
	g.views.InvalidateSaved(ctx, id)
	return nil
}
