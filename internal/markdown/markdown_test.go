// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML_Basic(t *testing.T) {
	html, err := ToHTML("# Title\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("unexpected HTML output: %s", html)
	}
}

func TestToHTML_GFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	html, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %s", html)
	}
}

func TestCompile_FullDocument(t *testing.T) {
	src := "---\n" +
		"title: Code review prompt\n" +
		"createdAt: 2026-02-01T08:00:00Z\n" +
		"rating: 3\n" +
		"templateId: code-review\n" +
		"---\n" +
		"Review the following code:\n\n```go\nfunc main() {}\n```\n"

	res := Compile(src)
	if res.Err != nil {
		t.Fatalf("Compile returned error: %v", res.Err)
	}
	if res.Frontmatter.Title != "Code review prompt" {
		t.Errorf("title = %q", res.Frontmatter.Title)
	}
	if res.Frontmatter.Rating == nil || *res.Frontmatter.Rating != 3 {
		t.Errorf("rating = %v, want 3", res.Frontmatter.Rating)
	}
	if !strings.Contains(res.HTML, "Review the following code") {
		t.Errorf("HTML missing body text: %s", res.HTML)
	}
	if strings.Contains(res.HTML, "title: Code review prompt") {
		t.Error("frontmatter leaked into rendered HTML")
	}
}

// Compile must capture failures in the result instead of panicking or
// returning a hard error, so callers can render a fallback.
func TestCompile_BadFrontmatterCaptured(t *testing.T) {
	res := Compile("---\ntitle: [unclosed\n---\nbody")
	if res.Err == nil {
		t.Fatal("expected Err for malformed YAML frontmatter")
	}
	if res.HTML != "" {
		t.Errorf("HTML should be empty on error, got %q", res.HTML)
	}
}

func TestCompile_PlaceholderSurvives(t *testing.T) {
	// Unfilled placeholders are legitimate content in a saved prompt and
	// must pass through Markdown conversion intact.
	res := Compile("---\ntitle: T\ntemplateId: x\n---\nHello {name}!\n")
	if res.Err != nil {
		t.Fatalf("Compile: %v", res.Err)
	}
	if !strings.Contains(res.HTML, "{name}") {
		t.Errorf("placeholder token lost in HTML: %s", res.HTML)
	}
}
