package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inovacc/repovault/internal/encoding"
	"github.com/inovacc/repovault/internal/model"
	"github.com/inovacc/repovault/internal/store"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Remove this repository? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	// Make path absolute
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// readInput reads the named file, or stdin when name is "-" or empty
func readInput(in io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	path, err := expandPath(name)
	if err != nil {
		return nil, err
	}

	data, err := encoding.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	return data, nil
}

// writeJSON prints v as indented JSON
func writeJSON(out io.Writer, v any) error {
	data, err := encoding.ToJSONIndent(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(data))

	return err
}

// printEmptyResult prints a "no results" message with a hint
func printEmptyResult(out io.Writer, what, hint string) {
	_, _ = fmt.Fprintf(out, "No %s found.\n", what)

	if hint != "" {
		_, _ = fmt.Fprintf(out, "%s\n", hint)
	}
}

// formatTime renders an optional timestamp in local time
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}

	return t.Local().Format("2006-01-02 15:04")
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}

	return s + strings.Repeat(" ", length-len(s))
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(out io.Writer, title string) {
	_, _ = fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(out, "║%s║\n", centerString(truncateString(title, boxWidth-2), boxWidth-2))
	_, _ = fmt.Fprintln(out, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(out io.Writer, label, value string) {
	content := truncateString(fmt.Sprintf("  %s: %s", label, value), boxWidth-2)
	padding := boxWidth - 2 - len(content)

	_, _ = fmt.Fprintf(out, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter(out io.Writer) {
	_, _ = fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════════╝")
}

// printInfoBox prints a complete info box with title and key-value pairs
func printInfoBox(out io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(out, title)

	for _, key := range order {
		if val, ok := items[key]; ok {
			printBoxLine(out, key, val)
		}
	}

	printBoxFooter(out)
}

// resolveRecord finds a saved repository by id, owner/name or URL
func resolveRecord(s *store.RepositoryStore, ref string) (model.SavedRepository, error) {
	if rec, ok := s.Get(ref); ok {
		return rec, nil
	}

	want := strings.TrimSuffix(strings.TrimSuffix(ref, "/"), ".git")

	for _, rec := range s.ListAll() {
		if strings.EqualFold(rec.FullName, want) || (rec.URL != "" && strings.EqualFold(strings.TrimSuffix(rec.URL, "/"), want)) {
			return rec, nil
		}
	}

	return model.SavedRepository{}, fmt.Errorf("repository not found: %s", ref)
}
