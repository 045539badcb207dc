// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"promptpress/internal/models"
)

// starterTemplates is the catalog seeded into an empty development database
// so the app is usable immediately after first start.
var starterTemplates = []models.Template{
	{
		TemplateMeta: models.TemplateMeta{
			ID:          "blog-post",
			Title:       "Blog Post Outline",
			Description: "Structured outline for a blog post on any topic",
			Category:    models.CategoryWriting,
			Emoji:       "📝",
			Tags:        []string{"writing", "blog", "outline"},
			Variables: []models.TemplateVariable{
				{Key: "topic", Label: "Topic", Type: models.VariableTypeText, Placeholder: "e.g. Go testing"},
				{Key: "audience", Label: "Audience", Type: models.VariableTypeText, Placeholder: "e.g. beginners"},
				{Key: "tone", Label: "Tone", Type: models.VariableTypeText, Placeholder: "e.g. friendly"},
			},
		},
		Content: "Write a blog post outline about {topic}.\n\nAudience: {audience}\nTone: {tone}\n\nInclude an introduction, three main sections, and a conclusion.\n",
	},
	{
		TemplateMeta: models.TemplateMeta{
			ID:          "code-review",
			Title:       "Code Review",
			Description: "Thorough review of a code snippet",
			Category:    models.CategoryCoding,
			Emoji:       "🔍",
			Tags:        []string{"coding", "review"},
			Variables: []models.TemplateVariable{
				{Key: "language", Label: "Language", Type: models.VariableTypeText, Placeholder: "e.g. Go"},
				{Key: "code", Label: "Code", Type: models.VariableTypeTextarea, Placeholder: "Paste the code here"},
			},
		},
		Content: "Review the following {language} code for correctness, readability, and idiomatic style:\n\n```\n{code}\n```\n",
	},
	{
		TemplateMeta: models.TemplateMeta{
			ID:          "product-pitch",
			Title:       "Product Pitch",
			Description: "Short marketing pitch for a product or feature",
			Category:    models.CategoryMarketing,
			Emoji:       "📣",
			Tags:        []string{"marketing", "pitch"},
			Variables: []models.TemplateVariable{
				{Key: "product", Label: "Product", Type: models.VariableTypeText},
				{Key: "benefit", Label: "Key benefit", Type: models.VariableTypeText},
			},
		},
		Content: "Write a three-sentence pitch for {product}, leading with {benefit}.\n",
	},
}

// Seed populates an empty database with the starter template catalog.
// It is a no-op when templates already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count); err != nil {
		return fmt.Errorf("seed check templates: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, t := range starterTemplates {
		tags, err := json.Marshal(t.Tags)
		if err != nil {
			return fmt.Errorf("seed marshal tags: %w", err)
		}
		variables, err := json.Marshal(t.Variables)
		if err != nil {
			return fmt.Errorf("seed marshal variables: %w", err)
		}

		_, err = db.Exec(`
			INSERT INTO templates (id, title, description, category, emoji, tags, variables, content)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, t.ID, t.Title, t.Description, t.Category, t.Emoji, tags, variables, t.Content)
		if err != nil {
			return fmt.Errorf("seed insert template %s: %w", t.ID, err)
		}
	}

	slog.Info("database seeded with starter templates", "count", len(starterTemplates))
	return nil
}
