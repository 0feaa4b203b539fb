// Package bib models bibliography entries loaded from a BibTeX source and
// the accessors the matching cascade needs.
package bib

import "strings"

// Entry types seen in the bibliography sources.
const (
	TypeArticle      = "article"
	TypeBook         = "book"
	TypeInCollection = "incollection"
	TypeInProceeding = "inproceedings"
	TypePhdThesis    = "phdthesis"
	TypeMisc         = "misc"
)

// Entry is one bibliography entry. Authors keeps the source's literal
// " and "-joined form; Title may carry protective braces that are stripped
// only for comparison. Year is truncated to 4 characters at load time so
// it compares against extracted years by plain string equality.
type Entry struct {
	ID        string
	Type      string
	Authors   string
	Title     string
	Year      string
	Address   string
	Journal   string
	BookTitle string
	Note      string
}

// FirstAuthor returns the first author token, splitting the source's
// " and" separator. Authors are stored "Last, First" so the result lines
// up with extracted first-author strings.
func (e *Entry) FirstAuthor() string {
	return strings.Split(e.Authors, " and")[0]
}

// CleanTitle returns the title with protective braces removed.
func (e *Entry) CleanTitle() string {
	return StripBraces(e.Title)
}

// Venue returns the text used for the last-resort disambiguation against
// a rendered citation: the conference/address where one exists, otherwise
// the journal or containing volume per entry type.
func (e *Entry) Venue() string {
	switch e.Type {
	case TypeArticle:
		if e.Journal != "" {
			return e.Journal
		}
		return e.Address
	case TypeBook, TypePhdThesis:
		return e.Address
	default:
		if e.Address != "" {
			return e.Address
		}
		return e.BookTitle
	}
}

// Container returns the label of the containing publication for content
// records: the journal for articles, the entry type for books and theses,
// and the containing volume otherwise.
func (e *Entry) Container() string {
	switch e.Type {
	case TypeArticle:
		return e.Journal
	case TypeBook, TypePhdThesis:
		return e.Type
	default:
		return e.BookTitle
	}
}

// StripBraces removes curly brace characters from s.
func StripBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "")
	return strings.ReplaceAll(s, "}", "")
}
