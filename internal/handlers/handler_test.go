// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The stack runs over flat-file stores in temp dirs and an in-memory view
// cache, so no external services are needed.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"promptpress/internal/cache"
	"promptpress/internal/gateway"
	"promptpress/internal/store"
	"promptpress/internal/store/file"
)

// memViews is an in-memory stand-in for the Valkey view cache. It also
// implements gateway.ViewInvalidator, so cache invalidation after mutations
// is observable end to end.
type memViews struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemViews() *memViews {
	return &memViews{data: make(map[string][]byte)}
}

func (m *memViews) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.data[key]
	return payload, ok
}

func (m *memViews) Set(_ context.Context, key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = payload
}

func (m *memViews) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memViews) InvalidateSavedList(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, cache.SavedListKey())
}

func (m *memViews) InvalidateSaved(_ context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, cache.SavedKey(id))
}

// testEnv is a complete API stack over temp-dir flat-file backends.
type testEnv struct {
	router  chi.Router
	views   *memViews
	tplDir  string
	catalog store.TemplateStore
}

// newTestEnv builds the handler stack. With preview set, mutations are
// rejected by the preview guard exactly as in a preview deployment.
func newTestEnv(t *testing.T, preview bool) *testEnv {
	t.Helper()

	tplDir := t.TempDir()
	catalog := file.NewTemplateStore(tplDir)

	fileStore, err := file.NewSavedPromptStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSavedPromptStore: %v", err)
	}

	var saved store.SavedPromptStore = fileStore
	if preview {
		saved = store.NewPreviewGuard(saved)
	}

	views := newMemViews()
	gw := gateway.New(saved, views)
	templates := NewTemplates(catalog, views)
	prompts := NewPrompts(saved, gw, views)

	r := chi.NewRouter()
	r.Get("/api/templates", templates.List)
	r.Get("/api/templates/{id}", templates.Get)
	r.Post("/api/templates/{id}/render", templates.Render)
	r.Get("/api/saved", prompts.List)
	r.Get("/api/saved/{id}", prompts.Get)
	r.Post("/api/save-prompt", prompts.Save)
	r.Post("/api/delete-prompt", prompts.Delete)
	r.Post("/api/update-rating", prompts.UpdateRating)

	return &testEnv{router: r, views: views, tplDir: tplDir, catalog: catalog}
}

// writeTemplate drops a catalog file for the flat-file template store.
func (e *testEnv) writeTemplate(t *testing.T, id, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.tplDir, id+".md"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write template %s: %v", id, err)
	}
}

// get performs a GET request against the stack.
func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// post performs a POST request with a JSON body against the stack.
func (e *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// blogTemplate is a minimal valid catalog document with two placeholders.
const blogTemplate = `---
title: Blog Post
description: Draft a blog post on any topic
category: writing
emoji: "📝"
tags:
  - writing
  - blog
variables:
  - key: topic
    label: Topic
    type: text
  - key: tone
    label: Tone
    type: text
---
Write a blog post about {topic} in a {tone} tone.
`

// savedDocument builds a saved-prompt document body for save tests.
func savedDocument(title, createdAt, body string) string {
	doc := "---\ntitle: " + title + "\n"
	if createdAt != "" {
		doc += "createdAt: " + createdAt + "\n"
	}
	doc += "templateId: blog-post\n---\n" + body
	return doc
}
