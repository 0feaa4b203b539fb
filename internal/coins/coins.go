// Package coins decodes the key/value metadata strings that citation
// exports embed in the title attribute of each reference's <span> element.
// Values are percent-escaped; this package passes the escaping through
// uninterpreted so both sides of every downstream comparison see the same
// encoded form.
package coins

import (
	"fmt"
	"strings"
)

// Field keys of interest in the encoded metadata.
const (
	KeyGenre       = "rft.genre"
	KeyTitle       = "rft.title"
	KeyArticle     = "rft.atitle"
	KeyBookTitle   = "rft.btitle"
	KeyDate        = "rft.date"
	KeyAuthorLast  = "rft.aulast"
	KeyAuthorFirst = "rft.aufirst"
)

// Fields is the decoded form of one metadata string: an ordered multi-map
// from field key to raw values. Keys repeat in the source (rft.date and
// rft.au in particular), so every occurrence is kept in document order.
type Fields struct {
	values map[string][]string
}

// Decode tokenizes an encoded metadata string. Segments without a "=" are
// skipped; there is exactly one delimiter scheme, so "field absent" means
// the key truly never appeared.
func Decode(metadata string) Fields {
	f := Fields{values: make(map[string][]string)}
	for _, segment := range strings.Split(metadata, "&") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key == "" {
			continue
		}
		f.values[key] = append(f.values[key], value)
	}
	return f
}

// Has reports whether the key appeared at least once.
func (f Fields) Has(key string) bool {
	return len(f.values[key]) > 0
}

// First returns the first value recorded for key, or "" if absent.
func (f Fields) First(key string) string {
	if v := f.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Last returns the last value recorded for key, or "" if absent.
func (f Fields) Last(key string) string {
	if v := f.values[key]; len(v) > 0 {
		return v[len(v)-1]
	}
	return ""
}

// Values returns all values recorded for key in document order.
func (f Fields) Values(key string) []string {
	return f.values[key]
}

// ExtractionError reports a required field missing from an encoded
// metadata string (malformed or unexpected-genre record).
type ExtractionError struct {
	Field string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("encoded metadata missing required field %q", e.Field)
}
