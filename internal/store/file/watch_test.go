// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTemplates_FiresOnMarkdownChange(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 8)

	w, err := WatchTemplates(dir, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatalf("WatchTemplates: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "new-template.md"), []byte(blogTemplate), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the markdown change")
	}
}

func TestWatchTemplates_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 8)

	w, err := WatchTemplates(dir, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatalf("WatchTemplates: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("watcher fired for a non-markdown file")
	case <-time.After(500 * time.Millisecond):
	}
}
