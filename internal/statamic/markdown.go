package statamic

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/simssa-lab/refmatch/internal/match"
	"gopkg.in/yaml.v3"
)

// Generator writes content record markdown files for matched citations.
type Generator struct {
	Kind       Kind
	SiteAuthor string
	OutputDir  string

	// Now stamps output filenames; overridable in tests.
	Now func() time.Time
}

// NewGenerator creates a Generator writing kind records into outputDir.
func NewGenerator(kind Kind, siteAuthor, outputDir string) *Generator {
	return &Generator{
		Kind:       kind,
		SiteAuthor: siteAuthor,
		OutputDir:  outputDir,
		Now:        time.Now,
	}
}

// Write renders one matched outcome as a markdown file named
// YYYY-MM-DD-<entry ID>.md and returns the path written.
func (g *Generator) Write(outcome match.Outcome) (string, error) {
	if !outcome.Matched() {
		return "", fmt.Errorf("cannot generate a record for a failed match: %w", outcome.Err)
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	content, err := Render(g.Kind, outcome, g.SiteAuthor)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s.md", g.Now().Format("2006-01-02"), outcome.Entry.ID)
	path := filepath.Join(g.OutputDir, name)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write record file: %w", err)
	}

	slog.Debug("wrote content record", "kind", string(g.Kind), "path", path)

	return path, nil
}

// Render produces the full markdown document for one matched outcome.
func Render(kind Kind, outcome match.Outcome, siteAuthor string) (string, error) {
	front, err := yaml.Marshal(frontMatter(kind, outcome.Entry, siteAuthor))
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(front) + "---\n" + body(outcome), nil
}
