// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"promptpress/internal/cache"
	"promptpress/internal/models"
)

func TestTemplatesList_Empty(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.get(t, "/api/templates")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestTemplatesList(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeTemplate(t, "blog-post", blogTemplate)

	rec := env.get(t, "/api/templates")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var metas []models.TemplateMeta
	decode(t, rec, &metas)
	if len(metas) != 1 {
		t.Fatalf("got %d templates, want 1", len(metas))
	}
	if metas[0].ID != "blog-post" || metas[0].Title != "Blog Post" {
		t.Errorf("meta = %+v", metas[0])
	}
	if len(metas[0].Variables) != 2 {
		t.Errorf("got %d variables, want 2", len(metas[0].Variables))
	}

	// The listing is now cached.
	if !env.views.has(cache.TemplateListKey()) {
		t.Error("template list should be cached after first request")
	}
}

func TestTemplateGet(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeTemplate(t, "blog-post", blogTemplate)

	rec := env.get(t, "/api/templates/blog-post")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var tpl models.Template
	decode(t, rec, &tpl)
	if tpl.ID != "blog-post" {
		t.Errorf("id = %q", tpl.ID)
	}
	if tpl.Content != "Write a blog post about {topic} in a {tone} tone.\n" {
		t.Errorf("content = %q", tpl.Content)
	}
}

func TestTemplateGet_NotFound(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.get(t, "/api/templates/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// Ids that look like path escapes must never reach the filesystem.
func TestTemplateGet_TraversalID(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.get(t, "/api/templates/..")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestTemplateRender(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeTemplate(t, "blog-post", blogTemplate)

	rec := env.post(t, "/api/templates/blog-post/render", map[string]any{
		"values": map[string]string{"topic": "Go generics", "tone": "friendly"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Rendered   string   `json:"rendered"`
		Unresolved []string `json:"unresolved"`
	}
	decode(t, rec, &resp)
	if want := "Write a blog post about Go generics in a friendly tone.\n"; resp.Rendered != want {
		t.Errorf("rendered = %q, want %q", resp.Rendered, want)
	}
	if len(resp.Unresolved) != 0 {
		t.Errorf("unresolved = %v, want none", resp.Unresolved)
	}
}

// Missing values leave their tokens in place and are reported as unresolved.
func TestTemplateRender_PartialValues(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeTemplate(t, "blog-post", blogTemplate)

	rec := env.post(t, "/api/templates/blog-post/render", map[string]any{
		"values": map[string]string{"topic": "testing"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Rendered   string   `json:"rendered"`
		Unresolved []string `json:"unresolved"`
	}
	decode(t, rec, &resp)
	if want := "Write a blog post about testing in a {tone} tone.\n"; resp.Rendered != want {
		t.Errorf("rendered = %q, want %q", resp.Rendered, want)
	}
	if len(resp.Unresolved) != 1 || resp.Unresolved[0] != "tone" {
		t.Errorf("unresolved = %v, want [tone]", resp.Unresolved)
	}
}

func TestTemplateRender_UnknownTemplate(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.post(t, "/api/templates/nope/render", map[string]any{"values": map[string]string{}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestTemplateRender_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, false)
	env.writeTemplate(t, "blog-post", blogTemplate)

	rec := env.post(t, "/api/templates/blog-post/render", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
