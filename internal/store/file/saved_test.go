// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package file

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"promptpress/internal/store"
)

func newSavedStore(t *testing.T) *SavedPromptStore {
	t.Helper()
	s, err := NewSavedPromptStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewSavedPromptStore: %v", err)
	}
	return s
}

func doc(title, templateID, createdAt, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + title + "\n")
	if createdAt != "" {
		b.WriteString("createdAt: " + createdAt + "\n")
	}
	b.WriteString("templateId: " + templateID + "\n")
	b.WriteString("---\n")
	b.WriteString(body)
	return b.String()
}

func TestSavedPromptStore_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSavedStore(t)

	created, err := s.Create(ctx, doc("Hello Prompt", "greeting", "", "Hello Aiichiro!\n"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create returned empty id")
	}
	if !strings.HasPrefix(created.ID, "hello-prompt-") {
		t.Errorf("id = %q, want hello-prompt- prefix", created.ID)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if got.Frontmatter.Title != "Hello Prompt" {
		t.Errorf("title = %q", got.Frontmatter.Title)
	}
	if got.Frontmatter.TemplateID != "greeting" {
		t.Errorf("templateId = %q", got.Frontmatter.TemplateID)
	}
	if got.Content != "Hello Aiichiro!\n" {
		t.Errorf("content = %q", got.Content)
	}
	if got.Frontmatter.Rating != nil {
		t.Errorf("rating = %v, want nil for a fresh record", *got.Frontmatter.Rating)
	}
	if got.Frontmatter.CreatedAt.IsZero() {
		t.Error("createdAt was not defaulted")
	}
}

func TestSavedPromptStore_CreateRejectsIncompleteDocument(t *testing.T) {
	s := newSavedStore(t)
	_, err := s.Create(context.Background(), "---\ntitle: no template id\n---\nbody")
	if !errors.Is(err, store.ErrInvalidDocument) {
		t.Errorf("err = %v, want ErrInvalidDocument", err)
	}
}

func TestSavedPromptStore_ListMetadataSortedByCreatedAtDesc(t *testing.T) {
	ctx := context.Background()
	s := newSavedStore(t)

	// Insert out of chronological order.
	for _, d := range []struct{ title, createdAt string }{
		{"Middle", "2026-02-01T00:00:00Z"},
		{"Oldest", "2026-01-01T00:00:00Z"},
		{"Newest", "2026-03-01T00:00:00Z"},
	} {
		if _, err := s.Create(ctx, doc(d.title, "t", d.createdAt, "body\n")); err != nil {
			t.Fatalf("Create %s: %v", d.title, err)
		}
	}

	metas := s.ListMetadata(ctx)
	if len(metas) != 3 {
		t.Fatalf("metas = %d, want 3", len(metas))
	}
	want := []string{"Newest", "Middle", "Oldest"}
	for i, w := range want {
		if metas[i].Title != w {
			t.Errorf("metas[%d].Title = %q, want %q", i, metas[i].Title, w)
		}
	}
	if !metas[0].CreatedAt.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("metas[0].CreatedAt = %v", metas[0].CreatedAt)
	}
}

func TestSavedPromptStore_UpdateRating(t *testing.T) {
	ctx := context.Background()
	s := newSavedStore(t)

	created, err := s.Create(ctx, doc("Rate me", "t", "", "The content stays.\n"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.UpdateRating(ctx, created.ID, 4); err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Frontmatter.Rating == nil || *got.Frontmatter.Rating != 4 {
		t.Errorf("rating = %v, want 4", got.Frontmatter.Rating)
	}
	// Only the rating may change.
	if got.Frontmatter.Title != "Rate me" {
		t.Errorf("title changed: %q", got.Frontmatter.Title)
	}
	if got.Content != "The content stays.\n" {
		t.Errorf("content changed: %q", got.Content)
	}
	if !got.Frontmatter.CreatedAt.Equal(created.Frontmatter.CreatedAt) {
		t.Errorf("createdAt changed: %v vs %v", got.Frontmatter.CreatedAt, created.Frontmatter.CreatedAt)
	}
}

func TestSavedPromptStore_UpdateRatingMissing(t *testing.T) {
	s := newSavedStore(t)
	if err := s.UpdateRating(context.Background(), "ghost", 3); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSavedPromptStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newSavedStore(t)

	created, err := s.Create(ctx, doc("Doomed", "t", "", "bye\n"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after Delete: err = %v, want ErrNotFound", err)
	}
	// A second delete reports not-found, it does not crash.
	if err := s.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete: err = %v, want ErrNotFound", err)
	}
}

func TestSavedPromptStore_NoPartialStateAfterUpdate(t *testing.T) {
	ctx := context.Background()
	s := newSavedStore(t)

	created, err := s.Create(ctx, doc("Atomic", "t", "", "original body\n"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// After several rating rewrites, no temp files may linger and the
	// directory must still list exactly one record.
	for r := 1; r <= 5; r++ {
		if err := s.UpdateRating(ctx, created.ID, r); err != nil {
			t.Fatalf("UpdateRating %d: %v", r, err)
		}
	}

	ids := s.ListIDs(ctx)
	if len(ids) != 1 || ids[0] != created.ID {
		t.Errorf("ids = %v, want exactly [%s]", ids, created.ID)
	}
}
