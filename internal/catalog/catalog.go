// Package catalog builds the categorized, numbered view of a prompt library.
// The catalog is a read-through projection of the prompt root: it is rebuilt
// from disk on every call and never cached.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Extension is the suffix a file must carry to count as a prompt.
const Extension = ".md"

// RootCategory is the category key for prompts stored directly in the root.
const RootCategory = "root"

// Entry is a single prompt file.
type Entry struct {
	Name string // Filename without the .md extension
	Path string // Absolute or root-joined path to the file
}

// Catalog maps a category key to its entries, sorted by filename.
type Catalog map[string][]Entry

// Categories returns the catalog's keys in ascending order.
func (c Catalog) Categories() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ScanOption configures Scan.
type ScanOption func(*scanner)

// WithIgnore excludes files whose slash-separated path relative to the root
// matches any of the given doublestar patterns.
func WithIgnore(patterns []string) ScanOption {
	return func(s *scanner) {
		s.ignore = append(s.ignore, patterns...)
	}
}

type scanner struct {
	root   string
	ignore []string
}

// Scan walks every directory under root, root included, and groups the .md
// files found directly in each one by category. Directories without a
// qualifying file are omitted. A missing root yields an empty Catalog.
func Scan(root string, opts ...ScanOption) (Catalog, error) {
	s := &scanner{root: root}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range s.ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	cat := make(Catalog)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cat, nil
		}
		return nil, fmt.Errorf("stat prompt root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("prompt root %s is not a directory", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subdirectories are skipped, not fatal.
			if path != root && d != nil && d.IsDir() {
				return fs.SkipDir
			}
			if path == root {
				return walkErr
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}
		// WalkDir does not follow links; a link to a directory is not a prompt.
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if s.ignored(rel) {
			return nil
		}

		key := RootCategory
		if dir := filepath.Dir(filepath.FromSlash(rel)); dir != "." {
			key = filepath.ToSlash(dir)
		}
		cat[key] = append(cat[key], Entry{
			Name: strings.TrimSuffix(d.Name(), Extension),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	for key, entries := range cat {
		sort.Slice(entries, func(i, j int) bool {
			return filepath.Base(entries[i].Path) < filepath.Base(entries[j].Path)
		})
		cat[key] = entries
	}

	return cat, nil
}

func (s *scanner) ignored(rel string) bool {
	for _, p := range s.ignore {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
