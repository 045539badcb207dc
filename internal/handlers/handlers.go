// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON HTTP API. Read endpoints check the
// Valkey-backed view cache before touching storage; mutations go through the
// persistence gateway, which owns cache invalidation.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// ViewCache is the slice of the cache layer the read handlers need.
// The production implementation is cache.ViewCache.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
}

// errorResponse is the uniform error payload for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// previewResponse acknowledges a mutation request that was accepted but not
// applied because the server runs in preview mode.
type previewResponse struct {
	Success   bool   `json:"success"`
	IsPreview bool   `json:"isPreview"`
	Message   string `json:"message"`
}

func newPreviewResponse() previewResponse {
	return previewResponse{
		Success:   true,
		IsPreview: true,
		Message:   "Preview mode: changes are not persisted.",
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeRawJSON writes an already-marshaled JSON payload, as served from the
// view cache.
func writeRawJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
