// Package create writes new prompt files into a prompt library, either
// from explicit arguments or through an interactive session.
package create

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is appended to every sanitized prompt name.
const Extension = ".md"

// RootCategory names the prompt root when used as a category.
const RootCategory = "root"

// Sentinel errors for the creation workflow.
var (
	ErrInvalidName  = errors.New("could not create valid filename from prompt name")
	ErrEmptyContent = errors.New("prompt content cannot be empty")
	ErrCancelled    = errors.New("cancelled")
	ErrInputClosed  = errors.New("input closed before a value was entered")
)

// Result describes a written prompt.
type Result struct {
	Path      string
	Category  string // "" for the root
	Overwrote bool   // a file already existed at Path
}

// ListCategories returns the visible immediate subdirectories of root,
// sorted. A missing root has no categories.
func ListCategories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading prompt root: %w", err)
	}

	var categories []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			categories = append(categories, e.Name())
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// ResolvePath returns where a prompt with the given stem lives. An empty
// category or RootCategory means the root itself.
func ResolvePath(root, category, stem string) string {
	if category == "" || category == RootCategory {
		return filepath.Join(root, stem+Extension)
	}
	return filepath.Join(root, filepath.FromSlash(category), stem+Extension)
}

// Write creates the parent directory if needed and writes content to path,
// replacing any existing file.
func Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating category directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing prompt file: %w", err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateFromArgs writes a prompt without asking anything. The category, if
// any, is sanitized like a name. An existing file is overwritten silently;
// only the interactive Session asks before replacing a prompt.
func CreateFromArgs(root, name, content, category string) (Result, error) {
	stem := SanitizeName(name)
	if stem == "" {
		return Result{}, ErrInvalidName
	}

	category = SanitizeName(category)
	path := ResolvePath(root, category, stem)
	res := Result{Path: path, Category: category, Overwrote: exists(path)}

	if err := Write(path, content); err != nil {
		return res, err
	}
	return res, nil
}
