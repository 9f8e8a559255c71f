package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/berth-dev/promptkit/internal/tui"
)

// ErrNotFound is returned by Lookup when a number is not in the index.
var ErrNotFound = errors.New("prompt not found")

// emptyMessage is printed instead of a listing when the catalog is empty.
const emptyMessage = "No prompts found. Create your first prompt to get started!"

// Item is one numbered row of the display index.
type Item struct {
	Number   int
	Category string
	Entry    Entry
}

// Index is the per-invocation numbering of a Catalog. Numbers start at 1 and
// run without gaps across categories in sorted order.
type Index struct {
	items []Item
}

// BuildIndex numbers every entry of c, categories ascending, entries ascending.
func BuildIndex(c Catalog) *Index {
	idx := &Index{}
	n := 1
	for _, category := range c.Categories() {
		for _, e := range c[category] {
			idx.items = append(idx.items, Item{Number: n, Category: category, Entry: e})
			n++
		}
	}
	return idx
}

// Len returns the number of indexed prompts.
func (idx *Index) Len() int { return len(idx.items) }

// Empty reports whether the index has no prompts.
func (idx *Index) Empty() bool { return len(idx.items) == 0 }

// Items returns the numbered entries in display order.
func (idx *Index) Items() []Item {
	out := make([]Item, len(idx.items))
	copy(out, idx.items)
	return out
}

// Lookup returns the entry numbered n.
func (idx *Index) Lookup(n int) (Entry, error) {
	if n < 1 || n > len(idx.items) {
		return Entry{}, fmt.Errorf("prompt number %d: %w", n, ErrNotFound)
	}
	return idx.items[n-1].Entry, nil
}

// Render writes the categorized listing to w. When styled is set, headings
// are colored with the tui styles.
func (idx *Index) Render(w io.Writer, styled bool) error {
	var b strings.Builder

	if idx.Empty() {
		msg := emptyMessage
		if styled {
			msg = tui.DimStyle.Render(msg)
		}
		b.WriteString(msg + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	title := "=== Available Custom Prompts ==="
	if styled {
		title = tui.TitleStyle.Render(title)
	}
	b.WriteString("\n" + title + "\n\n")

	current := ""
	for i, it := range idx.items {
		if i == 0 || it.Category != current {
			if i > 0 {
				b.WriteString("\n")
			}
			current = it.Category
			heading := "📁 " + categoryLabel(it.Category)
			if styled {
				heading = tui.CategoryStyle.Render(heading)
			}
			b.WriteString(heading + "\n")
		}
		num := fmt.Sprintf("%d.", it.Number)
		if styled {
			num = tui.NumberStyle.Render(num)
		}
		fmt.Fprintf(&b, "  %s %s\n", num, it.Entry.Name)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func categoryLabel(category string) string {
	if category == RootCategory {
		return "Root"
	}
	return category
}

// ReadContent returns the full text of the prompt file. Read failures are
// reported inline in the returned string so one bad file never aborts a
// listing.
func ReadContent(e Entry) string {
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return fmt.Sprintf("Error reading prompt: %v", err)
	}
	if !utf8.Valid(data) {
		return fmt.Sprintf("Error reading prompt: %s is not valid UTF-8", e.Path)
	}
	return string(data)
}
