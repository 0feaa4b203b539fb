// Package match selects, for each extracted citation record, the single
// bibliography entry it describes, by a cascade of narrowing filters:
// exact year, closest first author, closest title, then venue containment
// in the rendered citation as a last-resort tie-break.
package match

import (
	"log/slog"
	"strings"

	"github.com/simssa-lab/refmatch/internal/bib"
	"github.com/simssa-lab/refmatch/internal/coins"
	"github.com/simssa-lab/refmatch/internal/similarity"
)

// Disambiguate narrows entries down to the one entry rec describes.
// renderedText is the full human-readable citation, consulted only when
// year, author, and title leave a genuine tie (the same author publishing
// the same title twice in one year at different venues). Candidate
// narrowing is monotone: no stage reintroduces an eliminated entry.
func Disambiguate(rec coins.Record, entries []*bib.Entry, renderedText string) (*bib.Entry, error) {
	candidates := filterByYear(rec.Year, entries)
	if len(candidates) == 0 {
		return nil, &NoMatchError{Stage: StageYear, Year: rec.Year}
	}

	candidates = keepClosest(candidates, func(e *bib.Entry) float64 {
		return similarity.Ratio(rec.FirstAuthor, e.FirstAuthor())
	})
	slog.Debug("candidates after author filter", "count", len(candidates), "ids", ids(candidates))

	candidates = keepClosest(candidates, func(e *bib.Entry) float64 {
		return similarity.Ratio(rec.Title, e.CleanTitle())
	})
	slog.Debug("candidates after title filter", "count", len(candidates), "ids", ids(candidates))

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return breakTieByVenue(candidates, renderedText)
}

// filterByYear keeps entries with exactly the extracted year. Comparison
// is string equality, not numeric, preserving source formatting.
func filterByYear(year string, entries []*bib.Entry) []*bib.Entry {
	var kept []*bib.Entry
	for _, e := range entries {
		if e.Year == year {
			kept = append(kept, e)
		}
	}
	return kept
}

// keepClosest scores every candidate and keeps all that attain the
// maximum score. Input order is preserved so repeated runs stay
// deterministic.
func keepClosest(candidates []*bib.Entry, score func(*bib.Entry) float64) []*bib.Entry {
	scores := make([]float64, len(candidates))
	best := 0.0
	for i, c := range candidates {
		scores[i] = score(c)
		if scores[i] > best {
			best = scores[i]
		}
	}

	var kept []*bib.Entry
	for i, c := range candidates {
		if scores[i] == best {
			kept = append(kept, c)
		}
	}
	return kept
}

// breakTieByVenue selects the single candidate whose venue appears
// literally in the rendered citation text. Zero or multiple qualifying
// candidates leave the match ambiguous; guessing is not allowed.
func breakTieByVenue(candidates []*bib.Entry, renderedText string) (*bib.Entry, error) {
	var selected *bib.Entry
	for _, c := range candidates {
		venue := c.Venue()
		if venue == "" || !strings.Contains(renderedText, venue) {
			continue
		}
		if selected != nil {
			return nil, &AmbiguousError{Stage: StageVenue, IDs: ids(candidates)}
		}
		selected = c
	}
	if selected == nil {
		return nil, &AmbiguousError{Stage: StageVenue, IDs: ids(candidates)}
	}
	return selected, nil
}

func ids(entries []*bib.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
