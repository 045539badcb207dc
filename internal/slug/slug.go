// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug generates URL- and filename-friendly identifiers for saved
// prompts. Identifiers double as flat-file basenames, so they must never
// contain path separators or dots.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter, digit,
	// space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// maxStem bounds the readable part of a generated ID so filenames stay short.
const maxStem = 60

// NewID builds a unique saved-prompt identifier from a title: the slugged
// title followed by an 8-character random suffix. Titles that slug down to
// nothing (e.g. all punctuation) fall back to the stem "prompt".
func NewID(title string) string {
	stem := Generate(title)
	if stem == "" {
		stem = "prompt"
	}
	if len(stem) > maxStem {
		stem = strings.Trim(stem[:maxStem], "-")
	}
	return stem + "-" + uuid.NewString()[:8]
}
