// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for saved-prompt documents.
const maxDocumentLen = 100_000

// validateID checks a client-supplied record id and returns the first error
// found. Ids become file names in the flat-file backend, so path separators
// and parent-directory references are rejected outright.
func validateID(id string) string {
	if strings.TrimSpace(id) == "" {
		return "A prompt id is required."
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "Invalid prompt id."
	}
	return ""
}

// validateDocument checks a submitted prompt document and returns the first
// error found.
func validateDocument(content string) string {
	if strings.TrimSpace(content) == "" {
		return "Content is required."
	}
	if utf8.RuneCountInString(content) > maxDocumentLen {
		return "Content is too long (max 100,000 characters)."
	}
	return ""
}
