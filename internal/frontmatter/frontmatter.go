// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package frontmatter splits and joins Markdown documents that carry a YAML
// metadata header delimited by "---" lines. Decode and Encode form a
// round-trip pair: Decode(Encode(fm, body)) yields the same fm and body for
// every frontmatter field set used by this application.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Decode splits src into a YAML frontmatter block and a Markdown body,
// unmarshaling the block into fm. A document without an opening "---" line
// has no frontmatter: fm is left untouched and the whole source is returned
// as the body.
func Decode(src string, fm any) (body string, err error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	if !strings.HasPrefix(src, delimiter+"\n") {
		return src, nil
	}

	rest := src[len(delimiter)+1:]

	// Locate the closing delimiter, which must sit on its own line. It is
	// either followed by a newline and the body, or it ends the document.
	var block string
	switch end := strings.Index(rest, "\n"+delimiter+"\n"); {
	case strings.HasPrefix(rest, delimiter+"\n"):
		// Empty frontmatter block.
		block = ""
		body = rest[len(delimiter)+1:]
	case end >= 0:
		block = rest[:end+1]
		body = rest[end+len(delimiter)+2:]
	case strings.HasSuffix(rest, "\n"+delimiter):
		block = rest[:len(rest)-len(delimiter)]
		body = ""
	default:
		return "", fmt.Errorf("frontmatter: missing closing %q delimiter", delimiter)
	}

	if err := yaml.Unmarshal([]byte(block), fm); err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}
	return body, nil
}

// Encode joins a frontmatter value and a Markdown body into a single
// document. The body is written verbatim after the closing delimiter line.
func Encode(fm any, body string) (string, error) {
	block, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.Write(block)
	b.WriteString(delimiter + "\n")
	b.WriteString(body)
	return b.String(), nil
}
