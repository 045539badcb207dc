// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown compiles saved-prompt documents (YAML frontmatter +
// Markdown body) into HTML using goldmark. Compilation failures are captured
// in the result rather than returned as a hard error, so the presentation
// layer can show a fallback instead of failing the whole request.
package markdown

import (
	"bytes"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"promptpress/internal/frontmatter"
	"promptpress/internal/models"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // GitHub-Flavored Markdown: tables, strikethrough, autolinks, task lists
		extension.Typographer, // Smart quotes and dashes
		highlighting.NewHighlighting( // Syntax highlighting for fenced code blocks
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // Auto-generate heading IDs for anchors
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // Prompt text is plain prose; keep line breaks visible
	),
)

// Result holds the outcome of compiling a saved-prompt document. When Err is
// set, HTML is empty and Frontmatter contains whatever was parsed before the
// failure.
type Result struct {
	Frontmatter models.SavedPromptFrontmatter
	HTML        string
	Err         error
}

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Compile splits a combined frontmatter+body document and converts the body
// to HTML. It never returns an error: parse and conversion failures are
// recorded in Result.Err.
func Compile(source string) *Result {
	res := &Result{}

	body, err := frontmatter.Decode(source, &res.Frontmatter)
	if err != nil {
		res.Err = err
		return res
	}

	htmlOut, err := ToHTML(body)
	if err != nil {
		res.Err = err
		return res
	}
	res.HTML = htmlOut
	return res
}
