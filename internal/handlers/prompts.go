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
	"promptpress/internal/gateway"
	"promptpress/internal/markdown"
	"promptpress/internal/models"
	"promptpress/internal/store"
)

// Prompts groups the saved-prompt handlers. Reads go straight to the store
// (through the view cache); all mutations go through the persistence gateway
// so the cached views are always invalidated together with the write.
type Prompts struct {
	prompts store.SavedPromptStore
	gateway *gateway.Gateway
	views   ViewCache
}

// NewPrompts creates a new Prompts handler group.
func NewPrompts(prompts store.SavedPromptStore, gw *gateway.Gateway, views ViewCache) *Prompts {
	return &Prompts{prompts: prompts, gateway: gw, views: views}
}

// List returns saved-prompt metadata, most recently created first.
func (h *Prompts) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.views.Get(ctx, cache.SavedListKey()); ok {
		writeRawJSON(w, cached)
		return
	}

	metas := h.prompts.ListMetadata(ctx)
	if metas == nil {
		metas = []models.SavedPromptMeta{} // empty store marshals as [], not null
	}
	payload, err := json.Marshal(metas)
	if err != nil {
		slog.Error("marshal saved list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to list prompts."})
		return
	}

	h.views.Set(ctx, cache.SavedListKey(), payload)
	writeRawJSON(w, payload)
}

// savedDetailResponse is the detail view of a saved prompt: frontmatter
// fields flattened alongside the raw Markdown body and its compiled HTML.
// RenderError is set instead of HTML when the body fails to compile — a
// broken document must not take down the whole detail view.
type savedDetailResponse struct {
	ID string `json:"id"`
	models.SavedPromptFrontmatter
	Content     string `json:"content"`
	HTML        string `json:"html"`
	RenderError string `json:"renderError,omitempty"`
}

// Get returns a single saved prompt with its body compiled to HTML.
func (h *Prompts) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if msg := validateID(id); msg != "" {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Prompt not found."})
		return
	}

	if cached, ok := h.views.Get(ctx, cache.SavedKey(id)); ok {
		writeRawJSON(w, cached)
		return
	}

	p, err := h.prompts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Prompt not found."})
			return
		}
		slog.Error("get saved prompt failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load prompt."})
		return
	}

	resp := savedDetailResponse{
		ID:                     p.ID,
		SavedPromptFrontmatter: p.Frontmatter,
		Content:                p.Content,
	}

	html, err := markdown.ToHTML(p.Content)
	if err != nil {
		slog.Warn("compile saved prompt failed", "error", err, "id", id)
		resp.RenderError = "The prompt body could not be rendered."
	} else {
		resp.HTML = html
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		slog.Error("marshal saved prompt failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to load prompt."})
		return
	}

	// Only fully rendered views are worth caching; a compile failure is rare
	// and cheap to recompute.
	if resp.RenderError == "" {
		h.views.Set(ctx, cache.SavedKey(id), payload)
	}
	writeRawJSON(w, payload)
}

// saveRequest carries the combined frontmatter+body document to persist.
type saveRequest struct {
	Content string `json:"content"`
}

// saveResponse reports a successful save.
type saveResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Save persists a new prompt document and returns its generated id.
func (h *Prompts) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	if msg := validateDocument(req.Content); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	created, err := h.gateway.SavePrompt(r.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPreviewMode):
			writeJSON(w, http.StatusOK, newPreviewResponse())
		case errors.Is(err, store.ErrInvalidDocument):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Title and templateId frontmatter fields are required."})
		default:
			slog.Error("save prompt failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to save prompt."})
		}
		return
	}

	writeJSON(w, http.StatusCreated, saveResponse{ID: created.ID, Message: "Prompt saved."})
}

// deleteRequest identifies the prompt to remove.
type deleteRequest struct {
	ID string `json:"id"`
}

// successResponse is the generic acknowledgment for mutations.
type successResponse struct {
	Success bool `json:"success"`
}

// Delete removes a saved prompt.
func (h *Prompts) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	if msg := validateID(req.ID); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}

	if err := h.gateway.DeletePrompt(r.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrPreviewMode):
			writeJSON(w, http.StatusOK, newPreviewResponse())
		case errors.Is(err, store.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Prompt not found."})
		default:
			slog.Error("delete prompt failed", "error", err, "id", req.ID)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to delete prompt."})
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// ratingRequest carries a rating update.
type ratingRequest struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
}

// UpdateRating sets the star rating of a saved prompt.
func (h *Prompts) UpdateRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}

	if msg := validateID(req.ID); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
		return
	}
	if !models.ValidRating(req.Rating) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Rating must be between 1 and 5."})
		return
	}

	if err := h.gateway.UpdateRating(r.Context(), req.ID, req.Rating); err != nil {
		switch {
		case errors.Is(err, store.ErrPreviewMode):
			writeJSON(w, http.StatusOK, newPreviewResponse())
		case errors.Is(err, store.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Prompt not found."})
		default:
			slog.Error("update rating failed", "error", err, "id", req.ID)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to update rating."})
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
