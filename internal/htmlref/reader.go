// Package htmlref reads citation exports: HTML files where each reference
// is a div.csl-entry whose rendered text is followed by a <span> carrying
// encoded metadata in its title attribute.
package htmlref

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// Citation pairs one reference's encoded metadata with its human-readable
// rendering from the export.
type Citation struct {
	Metadata     string
	RenderedText string
}

// LoadFile reads all citations from an HTML export file.
func LoadFile(path string) ([]Citation, error) {
	slog.Debug("opening citation export", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open citation export: %w", err)
	}
	defer file.Close()

	citations, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read citation export %s: %w", path, err)
	}

	slog.Debug("citation export loaded", "path", path, "citations", len(citations))

	return citations, nil
}

// Read parses citations from HTML. Decorative spans (no title attribute)
// are ignored; spans with an empty title or without an associated
// csl-entry are skipped with a warning. A malformed span must not drop
// the rest of the export.
func Read(r io.Reader) ([]Citation, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var citations []Citation
	doc.Find("span").Each(func(i int, span *goquery.Selection) {
		// Spans without a title attribute are decorative markup, not
		// references; only a present-but-empty attribute is suspicious.
		metadata, ok := span.Attr("title")
		if !ok {
			return
		}
		if metadata == "" {
			slog.Warn("metadata span has empty title attribute, skipping", "index", i)
			return
		}

		rendered := renderedText(span)
		if rendered == "" {
			slog.Warn("metadata span has no associated csl-entry, skipping", "index", i)
			return
		}

		citations = append(citations, Citation{
			Metadata:     metadata,
			RenderedText: rendered,
		})
	})

	return citations, nil
}

// renderedText finds the rendered reference for a metadata span: the
// enclosing div.csl-entry, or the nearest preceding sibling when the span
// sits after its entry.
func renderedText(span *goquery.Selection) string {
	if entry := span.Closest("div.csl-entry"); entry.Length() > 0 {
		return entry.Text()
	}
	if entry := span.PrevAllFiltered("div.csl-entry").First(); entry.Length() > 0 {
		return entry.Text()
	}
	return ""
}
