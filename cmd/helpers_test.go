package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes lower", input: "y\n", expected: true},
		{name: "yes upper", input: "Y\n", expected: true},
		{name: "no", input: "n\n", expected: false},
		{name: "empty", input: "\n", expected: false},
		{name: "eof", input: "", expected: false},
		{name: "word", input: "yes\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			result := promptConfirm(strings.NewReader(tt.input), &out, "Continue? [y/N]: ")
			if result != tt.expected {
				t.Errorf("promptConfirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}

			if out.String() != "Continue? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "absolute path",
			input:   "/tmp/test",
			wantErr: false,
		},
		{
			name:    "home path",
			input:   "~/test",
			wantErr: false,
		},
		{
			name:    "relative path",
			input:   "test",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expandPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !filepath.IsAbs(result) {
				t.Errorf("expandPath(%q) = %q, want absolute path", tt.input, result)
			}
		})
	}
}

func TestReadInput(t *testing.T) {
	data, err := readInput(strings.NewReader("from stdin"), "-")
	if err != nil || string(data) != "from stdin" {
		t.Errorf("readInput(-) = %q, %v", data, err)
	}

	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte("from file"), 0600); err != nil {
		t.Fatal(err)
	}

	data, err = readInput(strings.NewReader(""), path)
	if err != nil || string(data) != "from file" {
		t.Errorf("readInput(file) = %q, %v", data, err)
	}

	if _, err := readInput(strings.NewReader(""), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("readInput(missing) should fail")
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(nil); got != "never" {
		t.Errorf("formatTime(nil) = %q, want never", got)
	}

	ts := time.Date(2025, 1, 2, 3, 4, 0, 0, time.Local)
	if got := formatTime(&ts); got != "2025-01-02 03:04" {
		t.Errorf("formatTime() = %q", got)
	}
}

func TestCenterString(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 7, "  abc  "},
		{"ab", 7, "  ab   "},
		{"toolong", 3, "toolong"},
	}

	for _, tt := range tests {
		if got := centerString(tt.input, tt.width); got != tt.expected {
			t.Errorf("centerString(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q", got)
	}

	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Errorf("padRight() = %q", got)
	}
}

func TestPrintInfoBox(t *testing.T) {
	var out bytes.Buffer

	printInfoBox(&out, "Title", map[string]string{"A": "1", "B": strings.Repeat("x", 100)}, []string{"A", "B", "C"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("printInfoBox() printed %d lines, want 6:\n%s", len(lines), out.String())
	}

	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Errorf("line %d has width %d, want %d: %q", i, n, width, line)
		}
	}
}

func TestRedactDSN(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"postgres://vault@db/repovault", "postgres://vault@db/repovault"},
		{"postgres://vault:secret@db/repovault?sslmode=disable", "postgres://vault:xxxxx@db/repovault?sslmode=disable"},
		{"host=db user=vault", "host=db user=vault"},
	}

	for _, tt := range tests {
		if got := redactDSN(tt.input); got != tt.expected {
			t.Errorf("redactDSN(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
