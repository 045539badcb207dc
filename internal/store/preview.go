// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"promptpress/internal/models"
)

// PreviewGuard wraps a SavedPromptStore and short-circuits every mutating
// operation with ErrPreviewMode before it can touch storage. Reads pass
// through unchanged. It is installed once at process start when the server
// runs in preview/demo mode.
type PreviewGuard struct {
	inner SavedPromptStore
}

// NewPreviewGuard wraps inner in a read-only preview guard.
func NewPreviewGuard(inner SavedPromptStore) *PreviewGuard {
	return &PreviewGuard{inner: inner}
}

func (g *PreviewGuard) ListIDs(ctx context.Context) []string {
	return g.inner.ListIDs(ctx)
}

func (g *PreviewGuard) ListMetadata(ctx context.Context) []models.SavedPromptMeta {
	return g.inner.ListMetadata(ctx)
}

func (g *PreviewGuard) Get(ctx context.Context, id string) (*models.SavedPrompt, error) {
	return g.inner.Get(ctx, id)
}

func (g *PreviewGuard) Create(ctx context.Context, document string) (*models.SavedPrompt, error) {
	return nil, ErrPreviewMode
}

func (g *PreviewGuard) UpdateRating(ctx context.Context, id string, rating int) error {
	return ErrPreviewMode
}

func (g *PreviewGuard) Delete(ctx context.Context, id string) error {
	return ErrPreviewMode
}
