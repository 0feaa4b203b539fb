package bib

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nickng/bibtex"
)

// LoadFile loads all entries from a BibTeX file.
func LoadFile(path string) ([]*Entry, error) {
	slog.Debug("opening bibliography", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bibliography file: %w", err)
	}
	defer file.Close()

	parsed, err := bibtex.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bibliography %s: %w", path, err)
	}

	entries := make([]*Entry, 0, len(parsed.Entries))
	for _, raw := range parsed.Entries {
		entries = append(entries, fromBibtex(raw))
	}

	slog.Debug("bibliography loaded", "path", path, "entries", len(entries))

	return entries, nil
}

func fromBibtex(raw *bibtex.BibEntry) *Entry {
	entry := &Entry{
		ID:        raw.CiteName,
		Type:      raw.Type,
		Authors:   field(raw, "author"),
		Title:     field(raw, "title"),
		Year:      field(raw, "year"),
		Address:   field(raw, "address"),
		Journal:   field(raw, "journal"),
		BookTitle: field(raw, "booktitle"),
		Note:      field(raw, "note"),
	}

	// Years compare by exact string equality downstream; a range like
	// "2015--2016" participates as its first 4 characters.
	if len(entry.Year) > 4 {
		entry.Year = entry.Year[:4]
	}

	return entry
}

func field(raw *bibtex.BibEntry, name string) string {
	if v, ok := raw.Fields[name]; ok {
		return v.String()
	}
	return ""
}
