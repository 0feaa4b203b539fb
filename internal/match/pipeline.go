package match

import (
	"errors"
	"log/slog"

	"github.com/simssa-lab/refmatch/internal/bib"
	"github.com/simssa-lab/refmatch/internal/coins"
	"github.com/simssa-lab/refmatch/internal/htmlref"
)

// Outcome is the result of matching one citation. On success Entry is the
// selected bibliography entry and CitationText the citation's rendered
// form; the bibliography entries themselves are never mutated, so the
// same slice can be run repeatedly. On failure Err carries one of
// *coins.ExtractionError, *NoMatchError, or *AmbiguousError.
type Outcome struct {
	Index        int
	Record       coins.Record
	Entry        *bib.Entry
	CitationText string
	Err          error
}

// Matched reports whether this citation resolved to an entry.
func (o Outcome) Matched() bool {
	return o.Err == nil
}

// FailureKind names the failure class for reporting, or "" on success.
func (o Outcome) FailureKind() string {
	var extractionErr *coins.ExtractionError
	var noMatchErr *NoMatchError
	var ambiguousErr *AmbiguousError
	switch {
	case o.Err == nil:
		return ""
	case errors.As(o.Err, &extractionErr):
		return "extraction"
	case errors.As(o.Err, &noMatchErr):
		return "no_match"
	case errors.As(o.Err, &ambiguousErr):
		return "ambiguous"
	default:
		return "error"
	}
}

// Run matches every citation against the bibliography, in input order.
// A failure on one citation never aborts the rest; each Outcome records
// its own result so an operator can fix and re-run only the failed
// subset.
func Run(citations []htmlref.Citation, entries []*bib.Entry) []Outcome {
	outcomes := make([]Outcome, 0, len(citations))

	for i, citation := range citations {
		outcome := Outcome{Index: i}

		rec, err := coins.Extract(citation.Metadata)
		if err != nil {
			slog.Warn("metadata extraction failed", "index", i, "error", err)
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			continue
		}
		outcome.Record = rec

		slog.Debug("extracted citation record",
			"index", i, "author", rec.FirstAuthor, "year", rec.Year, "title", rec.Title)

		entry, err := Disambiguate(rec, entries, citation.RenderedText)
		if err != nil {
			slog.Warn("disambiguation failed",
				"index", i, "author", rec.FirstAuthor, "year", rec.Year, "error", err)
			outcome.Err = err
			outcomes = append(outcomes, outcome)
			continue
		}

		slog.Debug("citation matched", "index", i, "id", entry.ID)

		outcome.Entry = entry
		outcome.CitationText = citation.RenderedText
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
