// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptpress/internal/cache"
	"promptpress/internal/models"
	"promptpress/internal/prompt"
	"promptpress/internal/store"
)

// Templates groups the read-only template catalog handlers. List and Get
// check the view cache first and store marshaled results on miss.
type Templates struct {
	catalog store.TemplateStore
	views   ViewCache
}

// NewTemplates creates a new Templates handler group.
func NewTemplates(catalog store.TemplateStore, views ViewCache) *Templates {
	return &Templates{catalog: catalog, views: views}
}

// List returns catalog metadata for every template, bodies excluded.
// A broken backend degrades to an empty list rather than an error.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.views.Get(ctx, cache.TemplateListKey()); ok {
		writeRawJSON(w, cached)
		return
	}

	metas := h.catalog.ListMetadata(ctx)
	if metas == nil {
		metas = []models.TemplateMeta{} // empty catalog marshals as [], not null
	}
	payload, err := json.Marshal(metas)
	if err != nil {
		slog.Error("marshal template list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to list templates."})
		return
	}

	h.views.Set(ctx, cache.TemplateListKey(), payload)
	writeRawJSON(w, payload)
}

// Get returns the full template, placeholder body included.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if msg := validateID(id); msg != "" {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Template not found."})
		return
	}

	if cached, ok := h.views.Get(ctx, cache.TemplateKey(id)); ok {
		writeRawJSON(w, cached)
		return
	}

	tpl, err := h.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Template not found."})
			return
		}
		slog.Error("get template failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load template."})
		return
	}

	payload, err := json.Marshal(tpl)
	if err != nil {
		slog.Error("marshal template failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load template."})
		return
	}

	h.views.Set(ctx, cache.TemplateKey(id), payload)
	writeRawJSON(w, payload)
}

// renderRequest carries the placeholder values for a render call.
type renderRequest struct {
	Values map[string]string `json:"values"`
}

// renderResponse is the substituted template body. Unresolved lists the
// placeholder keys still present after substitution, so the client can flag
// incomplete prompts.
type renderResponse struct {
	Rendered   string   `json:"rendered"`
	Unresolved []string `json:"unresolved"`
}

// Render substitutes the submitted values into the template body. Missing or
// empty values leave their `{key}` tokens in place and are reported back as
// unresolved.
func (h *Templates) Render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	tpl, err := h.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Template not found."})
			return
		}
		slog.Error("get template failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load template."})
		return
	}

	rendered := prompt.Render(tpl.Content, req.Values)
	writeJSON(w, http.StatusOK, renderResponse{
		Rendered:   rendered,
		Unresolved: prompt.Vars(rendered),
	})
}
