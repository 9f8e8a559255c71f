package create

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/berth-dev/promptkit/internal/testutil"
)

// runSession feeds input to a Session over root and returns its result and
// everything it printed.
func runSession(t *testing.T, root, input string) (Result, string, error) {
	t.Helper()
	var out strings.Builder
	res, err := NewSession(root, strings.NewReader(input), &out).Run()
	return res, out.String(), err
}

func TestSession_NoCategoriesSavesAtRoot(t *testing.T) {
	root := t.TempDir()

	res, out, err := runSession(t, root, "Test\nn\nhello\n")
	if err != nil {
		t.Fatalf("Run failed: %v\n%s", err, out)
	}
	if res.Path != filepath.Join(root, "test.md") {
		t.Errorf("path: got %s", res.Path)
	}
	if got := testutil.ReadFile(t, root, "test.md"); got != "hello" {
		t.Errorf("content: got %q, want %q", got, "hello")
	}
	if !strings.Contains(out, "Filename will be: test.md") {
		t.Errorf("output missing filename preview:\n%s", out)
	}
	if !strings.Contains(out, "No existing categories found.") {
		t.Errorf("output missing empty-category notice:\n%s", out)
	}
}

func TestSession_CreateFirstCategory(t *testing.T) {
	root := t.TempDir()

	res, _, err := runSession(t, root, "Daily Standup\ny\nMeeting Notes\nline 1\n\nline 3")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Category != "meeting-notes" {
		t.Errorf("category: got %q", res.Category)
	}
	got := testutil.ReadFile(t, root, "meeting-notes/daily-standup.md")
	if got != "line 1\n\nline 3" {
		t.Errorf("content: got %q", got)
	}
}

func TestSession_SelectExistingCategory(t *testing.T) {
	root := t.TempDir()
	testutil.MkdirAll(t, root, "coding", "writing", ".git")

	res, out, err := runSession(t, root, "Blog Intro\n2\nWrite an intro.\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Category != "writing" {
		t.Errorf("category: got %q, want writing", res.Category)
	}
	if !strings.Contains(out, "  1. coding\n  2. writing\n  0. Create new category") {
		t.Errorf("menu not rendered as expected:\n%s", out)
	}
	if strings.Contains(out, ".git") {
		t.Error("hidden directories must not be offered as categories")
	}
	if got := testutil.ReadFile(t, root, "writing/blog-intro.md"); got != "Write an intro." {
		t.Errorf("content: got %q", got)
	}
}

func TestSession_EnterSelectsRoot(t *testing.T) {
	root := t.TempDir()
	testutil.MkdirAll(t, root, "coding")

	res, _, err := runSession(t, root, "note\n\nbody\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Path != filepath.Join(root, "note.md") {
		t.Errorf("path: got %s", res.Path)
	}
}

func TestSession_NewCategoryFromMenu(t *testing.T) {
	root := t.TempDir()
	testutil.MkdirAll(t, root, "coding")

	res, _, err := runSession(t, root, "note\n0\nResearch_Papers\nbody\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Path != filepath.Join(root, "research-papers", "note.md") {
		t.Errorf("path: got %s", res.Path)
	}
}

func TestSession_BadMenuInputFallsBackToRoot(t *testing.T) {
	for _, tt := range []struct {
		input   string
		warning string
	}{
		{"7", "Invalid category number. Using root directory."},
		{"-1", "Invalid category number. Using root directory."},
		{"coding", "Invalid input. Using root directory."},
	} {
		root := t.TempDir()
		testutil.MkdirAll(t, root, "coding")

		res, out, err := runSession(t, root, "note\n"+tt.input+"\nbody\n")
		if err != nil {
			t.Fatalf("input %q: Run failed: %v", tt.input, err)
		}
		if res.Path != filepath.Join(root, "note.md") {
			t.Errorf("input %q: path %s, want root", tt.input, res.Path)
		}
		if !strings.Contains(out, tt.warning) {
			t.Errorf("input %q: missing warning %q", tt.input, tt.warning)
		}
	}
}

func TestSession_RequiredNameReprompts(t *testing.T) {
	root := t.TempDir()

	_, out, err := runSession(t, root, "\n   \nTitle\nn\nbody\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if c := strings.Count(out, "This field is required."); c != 2 {
		t.Errorf("got %d required-field notices, want 2", c)
	}
}

func TestSession_InvalidName(t *testing.T) {
	root := t.TempDir()

	_, _, err := runSession(t, root, "!!!\n")
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("got %v, want ErrInvalidName", err)
	}
}

func TestSession_EmptyContent(t *testing.T) {
	root := t.TempDir()

	_, _, err := runSession(t, root, "note\nn\n  \n\t\n")
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("got %v, want ErrEmptyContent", err)
	}
	if matches, _ := filepath.Glob(filepath.Join(root, "*.md")); len(matches) != 0 {
		t.Errorf("nothing should be written, found %v", matches)
	}
}

func TestSession_DeclineOverwriteKeepsOriginal(t *testing.T) {
	root := testutil.TempPromptRoot(t, map[string]string{"test.md": "original"})

	_, out, err := runSession(t, root, "Test\nn\nn\nnew content\n")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("got %v, want ErrCancelled", err)
	}
	if !strings.Contains(out, "already exists. Overwrite? (y/n)") {
		t.Errorf("missing overwrite question:\n%s", out)
	}
	if got := testutil.ReadFile(t, root, "test.md"); got != "original" {
		t.Errorf("content: got %q, want original", got)
	}
}

func TestSession_ConfirmOverwrite(t *testing.T) {
	root := testutil.TempPromptRoot(t, map[string]string{"test.md": "original"})

	res, _, err := runSession(t, root, "Test\nn\nY\nnew content\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Overwrote {
		t.Error("expected Overwrote to be set")
	}
	if got := testutil.ReadFile(t, root, "test.md"); got != "new content" {
		t.Errorf("content: got %q", got)
	}
}

func TestSession_InputClosedEarly(t *testing.T) {
	root := t.TempDir()

	_, _, err := runSession(t, root, "")
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("got %v, want ErrInputClosed", err)
	}
}

func TestSession_CRLFInput(t *testing.T) {
	root := t.TempDir()

	_, _, err := runSession(t, root, "Test\r\nn\r\nfirst\r\nsecond\r\n")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := testutil.ReadFile(t, root, "test.md"); got != "first\nsecond" {
		t.Errorf("content: got %q", got)
	}
}
