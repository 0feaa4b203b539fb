// Package statamic turns matched citation/bibliography pairs into
// markdown content records: YAML front matter followed by the rendered
// citation, one file per work.
package statamic

import (
	"fmt"

	"github.com/simssa-lab/refmatch/internal/bib"
	"github.com/simssa-lab/refmatch/internal/match"
)

// Kind selects which content record template a matched pair maps to.
type Kind string

const (
	KindPresentation Kind = "presentation"
	KindPublication  Kind = "publication"
	KindMedia        Kind = "media"
)

// ParseKind validates a kind name from the CLI.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindPresentation, KindPublication, KindMedia:
		return Kind(name), nil
	default:
		return "", fmt.Errorf("unknown record kind %q (expected presentation, publication, or media)", name)
	}
}

// presentationFront is the front matter for presentation and media
// records. The date fields are strings so years render quoted.
type presentationFront struct {
	Title              string  `yaml:"title"`
	Template           string  `yaml:"_template"`
	Conference         string  `yaml:"conference"`
	PresentationDate   string  `yaml:"presentation_date"`
	Author             string  `yaml:"author"`
	Upload             *string `yaml:"upload"`
	PresentationAuthor string  `yaml:"presentation_author"`
	PresentationYear   string  `yaml:"presentation_year"`
}

type publicationFront struct {
	Title       string  `yaml:"title"`
	Template    string  `yaml:"_template"`
	Conference  string  `yaml:"conference"`
	Year        string  `yaml:"year"`
	FirstAuthor string  `yaml:"first_author"`
	Author      string  `yaml:"author"`
	Upload      *string `yaml:"upload"`
}

// frontMatter builds the front matter value for a matched entry. The
// record title is the bibliography ID; upload is the entry's note field
// (null when absent) and siteAuthor attributes the content to the site
// account publishing it.
func frontMatter(kind Kind, entry *bib.Entry, siteAuthor string) any {
	upload := optional(entry.Note)

	switch kind {
	case KindPublication:
		return publicationFront{
			Title:       entry.ID,
			Template:    string(kind),
			Conference:  entry.Container(),
			Year:        entry.Year,
			FirstAuthor: entry.Authors,
			Author:      siteAuthor,
			Upload:      upload,
		}
	default:
		return presentationFront{
			Title:              entry.ID,
			Template:           string(kind),
			Conference:         entry.Address,
			PresentationDate:   entry.Year,
			Author:             siteAuthor,
			Upload:             upload,
			PresentationAuthor: entry.Authors,
			PresentationYear:   entry.Year,
		}
	}
}

// body returns the citation text for the record, linking the work's
// title to the upload URL when the entry carries one.
func body(outcome match.Outcome) string {
	if outcome.Entry.Note == "" {
		return outcome.CitationText
	}
	return InjectLink(outcome.CitationText, outcome.Entry.Note, outcome.Entry.CleanTitle())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
