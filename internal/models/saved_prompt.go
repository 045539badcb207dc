// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Rating bounds. A nil rating means "not yet rated"; zero is not a valid
// submitted value.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an acceptable user-submitted rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// SavedPromptFrontmatter is the structured metadata header of a saved prompt
// document. TemplateID references the originating template purely for display;
// it is not enforced as a foreign key.
type SavedPromptFrontmatter struct {
	Title      string    `json:"title" yaml:"title"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	Rating     *int      `json:"rating" yaml:"rating"`
	TemplateID string    `json:"templateId" yaml:"templateId"`
}

// SavedPrompt is a user-persisted, rendered instance of a template.
// ID is immutable after creation: in the flat-file backend it is derived from
// the filename, in the relational backend it is generated on insert.
type SavedPrompt struct {
	ID          string                 `json:"id"`
	Frontmatter SavedPromptFrontmatter `json:"frontmatter"`
	Content     string                 `json:"content"`
}

// SavedPromptMeta is the sidebar-listing view of a saved prompt.
type SavedPromptMeta struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}
