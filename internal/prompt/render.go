// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt renders template bodies by literal placeholder substitution.
// This is deliberately not a templating language: tokens have the exact shape
// {identifier} and are replaced by plain text, with no nesting, escaping, or
// expression evaluation.
package prompt

import "regexp"

// token matches a placeholder of the form {key}, where key is one or more
// letters, digits, or underscores.
var token = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Render replaces every {key} token in content whose key has a non-empty
// value in values. Tokens with a missing or empty value are left verbatim,
// so an unfilled variable stays visible as a placeholder in the output.
//
// Substitution is a single pass over the content: replacement values are
// never re-scanned, so keys cannot interact with each other. Render is pure
// and performs no I/O.
func Render(content string, values map[string]string) string {
	if len(values) == 0 {
		return content
	}
	return token.ReplaceAllStringFunc(content, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return m
	})
}

// Vars returns the distinct placeholder keys appearing in content, in order
// of first appearance.
func Vars(content string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range token.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}
