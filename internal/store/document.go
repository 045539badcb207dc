// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"time"

	"promptpress/internal/frontmatter"
	"promptpress/internal/models"
)

// ParseDocument splits a submitted saved-prompt document into frontmatter and
// body and applies the creation defaults shared by both backends: CreatedAt
// falls back to now, a rating outside [MinRating, MaxRating] is discarded as
// unrated. Returns ErrInvalidDocument when title or templateId is missing.
func ParseDocument(document string, now time.Time) (models.SavedPromptFrontmatter, string, error) {
	var fm models.SavedPromptFrontmatter
	body, err := frontmatter.Decode(document, &fm)
	if err != nil {
		return fm, "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if fm.Title == "" || fm.TemplateID == "" {
		return fm, "", ErrInvalidDocument
	}

	if fm.CreatedAt.IsZero() {
		fm.CreatedAt = now
	}
	if fm.Rating != nil && !models.ValidRating(*fm.Rating) {
		fm.Rating = nil
	}

	return fm, body, nil
}
