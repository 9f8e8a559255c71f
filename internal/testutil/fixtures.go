// Package testutil provides test helper utilities for promptkit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempPromptRoot creates a temporary prompt root with the given files and
// returns its path. Files is a map of slash-separated relative path ->
// content. Directories are created as needed. The directory is
// automatically cleaned up when the test finishes.
func TempPromptRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// MkdirAll creates the given slash-separated directories under root.
func MkdirAll(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatalf("creating directory %s: %v", d, err)
		}
	}
}

// ReadFile returns the content of a file under root, failing the test if it
// cannot be read.
func ReadFile(t *testing.T, root, relPath string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("reading %s: %v", relPath, err)
	}
	return string(data)
}

// Library returns a small prompt library spanning the root, two categories
// and a nested category.
func Library() map[string]string {
	return map[string]string{
		"quick-note.md":                "Write a short note.",
		"brainstorm.md":                "List ten ideas about {{topic}}.",
		"coding/review.md":             "Review this diff for bugs.",
		"coding/explain.md":            "Explain this function.",
		"coding/notes.txt":             "not a prompt",
		"writing/blog-outline.md":      "Outline a blog post.",
		"writing/drafts/intro-hook.md": "Write an opening hook.",
		"empty-dir/.keep":              "",
	}
}
