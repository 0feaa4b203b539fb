package gencmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSingular(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
	}{
		{"presentations", "presentation"},
		{"publications", "publication"},
		{"media", "media"},
	}

	for _, tt := range tests {
		if got := singular(tt.arg); got != tt.expected {
			t.Errorf("singular(%q) = %q, want %q", tt.arg, got, tt.expected)
		}
	}
}

func TestCheckInputs(t *testing.T) {
	tmpDir := t.TempDir()
	htmlPath := filepath.Join(tmpDir, "refs.html")
	bibPath := filepath.Join(tmpDir, "refs.bib")

	if err := os.WriteFile(htmlPath, []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bibPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	if err := checkInputs(htmlPath, bibPath); err != nil {
		t.Errorf("Expected no error for existing inputs, got %v", err)
	}

	if err := checkInputs(filepath.Join(tmpDir, "missing.html"), bibPath); err == nil {
		t.Error("Expected error for missing citation export")
	}

	if err := checkInputs(htmlPath, filepath.Join(tmpDir, "missing.bib")); err == nil {
		t.Error("Expected error for missing bibliography")
	}
}

func TestNewMatchCmdFlags(t *testing.T) {
	cmd := NewMatchCmd()

	for _, flag := range []string{"html", "bib", "report"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected match command to define --%s", flag)
		}
	}
}

func TestNewGenerateCmdFlags(t *testing.T) {
	cmd := NewGenerateCmd()

	for _, flag := range []string{"html", "bib", "output"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected generate command to define --%s", flag)
		}
	}
}
