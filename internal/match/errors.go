package match

import (
	"fmt"
	"strings"
)

// Cascade stage names, used in error reporting.
const (
	StageYear   = "year"
	StageAuthor = "author"
	StageTitle  = "title"
	StageVenue  = "venue"
)

// NoMatchError reports a cascade stage that eliminated every candidate.
// Surfaced for manual review; never recovered automatically.
type NoMatchError struct {
	Stage string
	Year  string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no bibliography entry survived the %s filter (year %s)", e.Stage, e.Year)
}

// AmbiguousError reports that more than one candidate survived the final
// stage, or that the venue tie-break matched zero or multiple entries.
// Picking an arbitrary survivor is explicitly disallowed.
type AmbiguousError struct {
	Stage string
	IDs   []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous match after %s stage, candidates: %s", e.Stage, strings.Join(e.IDs, ", "))
}
