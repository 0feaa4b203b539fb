package match

import (
	"errors"
	"testing"

	"github.com/simssa-lab/refmatch/internal/bib"
	"github.com/simssa-lab/refmatch/internal/coins"
	"github.com/simssa-lab/refmatch/internal/htmlref"
)

func TestRunMatchesCitation(t *testing.T) {
	citations := []htmlref.Citation{
		{
			Metadata:     "rft.genre=proceeding&rft.atitle=Modal Rhythms&rft.aulast=Smith&rft.aufirst=Jane&rft.date=2015",
			RenderedText: `Smith, Jane. "Modal Rhythms." Proceedings of SMC, 2015.`,
		},
	}
	entries := []*bib.Entry{
		{
			ID:      "smith2015modal",
			Type:    bib.TypeInProceeding,
			Authors: "Smith, Jane and Doe, John",
			Title:   "Modal Rhythms",
			Year:    "2015",
			Address: "SMC",
		},
	}

	outcomes := Run(citations, entries)
	if len(outcomes) != 1 {
		t.Fatalf("Expected 1 outcome, got %d", len(outcomes))
	}

	o := outcomes[0]
	if !o.Matched() {
		t.Fatalf("Expected a match, got error: %v", o.Err)
	}
	if o.Entry.ID != "smith2015modal" {
		t.Errorf("Expected smith2015modal, got %s", o.Entry.ID)
	}
	if o.CitationText != citations[0].RenderedText {
		t.Errorf("Expected rendered text attached to the outcome, got %q", o.CitationText)
	}
	if o.FailureKind() != "" {
		t.Errorf("Expected empty failure kind on success, got %q", o.FailureKind())
	}
}

func TestRunVenueTieBreakEndToEnd(t *testing.T) {
	citations := []htmlref.Citation{
		{
			Metadata:     "rft.genre=proceeding&rft.atitle=Modal Rhythms&rft.aulast=Smith&rft.aufirst=Jane&rft.date=2015",
			RenderedText: `Smith, Jane. "Modal Rhythms." SMC 2015.`,
		},
	}
	entries := []*bib.Entry{
		{ID: "icmc", Type: bib.TypeInProceeding, Authors: "Smith, Jane", Title: "Modal Rhythms", Year: "2015", Address: "ICMC"},
		{ID: "smc", Type: bib.TypeInProceeding, Authors: "Smith, Jane", Title: "Modal Rhythms", Year: "2015", Address: "SMC"},
	}

	outcomes := Run(citations, entries)
	if !outcomes[0].Matched() {
		t.Fatalf("Expected a match, got: %v", outcomes[0].Err)
	}
	if outcomes[0].Entry.ID != "smc" {
		t.Errorf("Expected the SMC entry, got %s", outcomes[0].Entry.ID)
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	citations := []htmlref.Citation{
		// Extraction failure: no date field.
		{Metadata: "rft.title=Broken&rft.aulast=Smith&rft.aufirst=Jane", RenderedText: "Broken citation."},
		// No bibliography entry for 1999.
		{Metadata: "rft.title=Orphan&rft.aulast=Smith&rft.aufirst=Jane&rft.date=1999", RenderedText: "Orphan citation."},
		// A clean match.
		{Metadata: "rft.title=Good Work&rft.aulast=Smith&rft.aufirst=Jane&rft.date=2015", RenderedText: "Smith, Jane. Good Work. 2015."},
	}
	entries := []*bib.Entry{
		{ID: "good", Type: bib.TypeMisc, Authors: "Smith, Jane", Title: "Good Work", Year: "2015"},
	}

	outcomes := Run(citations, entries)
	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}

	var extractionErr *coins.ExtractionError
	if !errors.As(outcomes[0].Err, &extractionErr) {
		t.Errorf("Expected extraction error first, got %v", outcomes[0].Err)
	}
	if outcomes[0].FailureKind() != "extraction" {
		t.Errorf("Expected extraction failure kind, got %q", outcomes[0].FailureKind())
	}

	var noMatch *NoMatchError
	if !errors.As(outcomes[1].Err, &noMatch) {
		t.Errorf("Expected no-match error second, got %v", outcomes[1].Err)
	}
	if outcomes[1].FailureKind() != "no_match" {
		t.Errorf("Expected no_match failure kind, got %q", outcomes[1].FailureKind())
	}

	if !outcomes[2].Matched() {
		t.Errorf("Expected third citation to match despite earlier failures, got %v", outcomes[2].Err)
	}
	if outcomes[2].Index != 2 {
		t.Errorf("Expected outcome index 2, got %d", outcomes[2].Index)
	}
}

func TestRunAmbiguousFailureKind(t *testing.T) {
	citations := []htmlref.Citation{
		{
			Metadata:     "rft.title=Twice Published&rft.aulast=Smith&rft.aufirst=Jane&rft.date=2015",
			RenderedText: "Smith, Jane. Twice Published. 2015.",
		},
	}
	entries := []*bib.Entry{
		{ID: "a", Type: bib.TypeMisc, Authors: "Smith, Jane", Title: "Twice Published", Year: "2015", Address: "Venue A"},
		{ID: "b", Type: bib.TypeMisc, Authors: "Smith, Jane", Title: "Twice Published", Year: "2015", Address: "Venue B"},
	}

	outcomes := Run(citations, entries)

	var ambiguous *AmbiguousError
	if !errors.As(outcomes[0].Err, &ambiguous) {
		t.Fatalf("Expected ambiguous error, got %v", outcomes[0].Err)
	}
	if outcomes[0].FailureKind() != "ambiguous" {
		t.Errorf("Expected ambiguous failure kind, got %q", outcomes[0].FailureKind())
	}
}

func TestRunDoesNotMutateEntries(t *testing.T) {
	citations := []htmlref.Citation{
		{
			Metadata:     "rft.title=Good Work&rft.aulast=Smith&rft.aufirst=Jane&rft.date=2015",
			RenderedText: "Smith, Jane. Good Work. 2015.",
		},
	}
	entries := []*bib.Entry{
		{ID: "good", Type: bib.TypeMisc, Authors: "Smith, Jane", Title: "Good Work", Year: "2015"},
	}
	snapshot := *entries[0]

	first := Run(citations, entries)
	second := Run(citations, entries)

	if *entries[0] != snapshot {
		t.Error("Run must not mutate bibliography entries")
	}
	if first[0].Entry != second[0].Entry {
		t.Error("Repeated runs over the same bibliography should select the same entry")
	}
	if first[0].CitationText != second[0].CitationText {
		t.Error("Repeated runs should attach identical citation text")
	}
}

func TestRunEmptyInputs(t *testing.T) {
	outcomes := Run(nil, nil)
	if len(outcomes) != 0 {
		t.Errorf("Expected no outcomes for no citations, got %d", len(outcomes))
	}
}
