package create

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Session runs the interactive creation flow over an arbitrary input
// stream. Prompt content is read line by line until the stream ends, so a
// terminal ends it with Ctrl+D and tests end it with the end of a buffer.
type Session struct {
	Root string

	in  *bufio.Reader
	out io.Writer
}

// NewSession creates a Session reading answers from in and writing
// questions to out.
func NewSession(root string, in io.Reader, out io.Writer) *Session {
	return &Session{
		Root: root,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run asks for a name, a category and the content, then writes the prompt.
// Declining to overwrite an existing file returns ErrCancelled and leaves
// the file untouched.
func (s *Session) Run() (Result, error) {
	fmt.Fprint(s.out, "\n=== Create New Custom Prompt ===\n\n")

	fmt.Fprintln(s.out, "Enter a name for your prompt (e.g., 'React Component Generator'):")
	name, err := s.askRequired("> ")
	if err != nil {
		return Result{}, err
	}
	stem := SanitizeName(name)
	if stem == "" {
		return Result{}, ErrInvalidName
	}
	fmt.Fprintf(s.out, "Filename will be: %s%s\n", stem, Extension)

	category, err := s.chooseCategory()
	if err != nil {
		return Result{}, err
	}

	path := ResolvePath(s.Root, category, stem)
	res := Result{Path: path, Category: category}

	if exists(path) {
		answer, err := s.ask(fmt.Sprintf("\nFile %s already exists. Overwrite? (y/n): ", path))
		if err != nil {
			return res, err
		}
		if strings.ToLower(answer) != "y" {
			return res, ErrCancelled
		}
		res.Overwrote = true
	}

	fmt.Fprintln(s.out, "\nEnter your prompt content (press Ctrl+D or Ctrl+Z when done):")
	fmt.Fprintln(s.out, strings.Repeat("=", 50))

	content, err := s.readContent()
	if err != nil {
		return res, err
	}
	if strings.TrimSpace(content) == "" {
		return res, ErrEmptyContent
	}

	if err := Write(path, content); err != nil {
		return res, err
	}
	return res, nil
}

// chooseCategory returns the sanitized category, or "" for the root. Bad
// menu input never fails; it falls back to the root with a warning.
func (s *Session) chooseCategory() (string, error) {
	categories, err := ListCategories(s.Root)
	if err != nil {
		return "", err
	}

	if len(categories) == 0 {
		fmt.Fprintln(s.out, "\nNo existing categories found.")
		answer, err := s.ask("Create a category? (y/n): ")
		if err != nil {
			return "", err
		}
		if strings.ToLower(answer) != "y" {
			return "", nil
		}
		return s.newCategory("Enter category name: ")
	}

	fmt.Fprintln(s.out, "\nExisting categories:")
	for i, c := range categories {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, c)
	}
	fmt.Fprintln(s.out, "  0. Create new category")
	fmt.Fprintln(s.out, "  [Enter]. Save in root directory")

	answer, err := s.ask("\nSelect category (number or press Enter for root): ")
	if err != nil {
		return "", err
	}

	switch answer {
	case "":
		return "", nil
	case "0":
		return s.newCategory("Enter new category name: ")
	}

	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		fmt.Fprintln(s.out, "Invalid input. Using root directory.")
		return "", nil
	}
	if n < 1 || n > len(categories) {
		fmt.Fprintln(s.out, "Invalid category number. Using root directory.")
		return "", nil
	}
	return categories[n-1], nil
}

func (s *Session) newCategory(prompt string) (string, error) {
	name, err := s.askRequired(prompt)
	if err != nil {
		return "", err
	}
	category := SanitizeName(name)
	if category == "" {
		fmt.Fprintln(s.out, "Invalid category name. Using root directory.")
	}
	return category, nil
}

// ask prints prompt and returns the trimmed answer.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askRequired repeats prompt until a non-blank answer is given.
func (s *Session) askRequired(prompt string) (string, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(s.out, "This field is required. Please enter a value.")
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; ErrInputClosed means nothing was left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return trimNewline(line), nil
}

// readContent collects lines until end of input and joins them with "\n".
func (s *Session) readContent() (string, error) {
	var lines []string
	for {
		line, err := s.readLine()
		if errors.Is(err, ErrInputClosed) {
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
