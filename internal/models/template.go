// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// TemplateCategory groups templates in the catalog.
type TemplateCategory string

const (
	CategoryWriting   TemplateCategory = "writing"
	CategoryCoding    TemplateCategory = "coding"
	CategoryMarketing TemplateCategory = "marketing"
	CategoryEducation TemplateCategory = "education"
	CategoryCreative  TemplateCategory = "creative"
)

// Valid reports whether the category is one of the known catalog categories.
// An empty category is allowed — older templates were created without one.
func (c TemplateCategory) Valid() bool {
	switch c {
	case "", CategoryWriting, CategoryCoding, CategoryMarketing, CategoryEducation, CategoryCreative:
		return true
	}
	return false
}

// VariableType distinguishes single-line from multi-line variable inputs.
type VariableType string

const (
	VariableTypeText     VariableType = "text"
	VariableTypeTextarea VariableType = "textarea"
)

// TemplateVariable describes one placeholder declared by a template.
// Key must match the `{key}` tokens embedded in the template body.
type TemplateVariable struct {
	Key         string       `json:"key" yaml:"key"`
	Label       string       `json:"label" yaml:"label"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Type        VariableType `json:"type" yaml:"type"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// TemplateMeta is the catalog-listing view of a template: everything except
// the body. It mirrors the frontmatter block of a flat-file template.
type TemplateMeta struct {
	ID          string             `json:"id" yaml:"id"`
	Title       string             `json:"title" yaml:"title"`
	Description string             `json:"description" yaml:"description"`
	Category    TemplateCategory   `json:"category,omitempty" yaml:"category,omitempty"`
	Emoji       string             `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Tags        []string           `json:"tags" yaml:"tags"`
	Variables   []TemplateVariable `json:"variables" yaml:"variables"`
}

// Template is a reusable prompt skeleton. Content holds the body text with
// zero or more `{key}` placeholder tokens. Templates are read-only from the
// application's perspective — the catalog is managed out of band.
type Template struct {
	TemplateMeta `yaml:",inline"`
	Content      string `json:"content" yaml:"-"`
}

// Complete reports whether the template carries the minimal required fields
// (id, title, variables). A record failing this check is treated as absent by
// the stores rather than surfaced as corrupt data.
func (t *Template) Complete() bool {
	return t.ID != "" && t.Title != "" && t.Variables != nil
}
