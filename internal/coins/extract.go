package coins

import "log/slog"

// Record holds the fields extracted from one encoded metadata string.
// Title is the work's own title (empty for unrecognized genres), Year is
// exactly 4 characters, and FirstAuthor is "Last, First". All three keep
// whatever percent-escaping the source carried.
type Record struct {
	Title       string
	Year        string
	FirstAuthor string
}

// Extract parses one encoded metadata string into a Record. It returns an
// *ExtractionError naming the first required field found missing.
func Extract(metadata string) (Record, error) {
	fields := Decode(metadata)

	year, err := extractYear(fields)
	if err != nil {
		return Record{}, err
	}

	author, err := extractFirstAuthor(fields)
	if err != nil {
		return Record{}, err
	}

	title, err := extractTitle(fields)
	if err != nil {
		return Record{}, err
	}

	return Record{Title: title, Year: year, FirstAuthor: author}, nil
}

// extractYear takes the first 4 characters of each date value. The date
// field may repeat (e.g. an issue date alongside a publication date); the
// last occurrence wins.
func extractYear(fields Fields) (string, error) {
	var year string
	for _, date := range fields.Values(KeyDate) {
		runes := []rune(date)
		if len(runes) < 4 {
			continue
		}
		year = string(runes[:4])
	}
	if year == "" {
		return "", &ExtractionError{Field: KeyDate}
	}
	return year, nil
}

// extractFirstAuthor joins the split last/first name fields. Only the
// first author is split in the source encoding; the rest appear as
// repeated rft.au values and are left undecoded.
func extractFirstAuthor(fields Fields) (string, error) {
	if !fields.Has(KeyAuthorLast) {
		return "", &ExtractionError{Field: KeyAuthorLast}
	}
	if !fields.Has(KeyAuthorFirst) {
		return "", &ExtractionError{Field: KeyAuthorFirst}
	}
	return fields.First(KeyAuthorLast) + ", " + fields.First(KeyAuthorFirst), nil
}

// extractTitle picks the title field by genre. An unrecognized genre
// yields an empty title, not an error; the record is still matchable on
// year and author.
func extractTitle(fields Fields) (string, error) {
	genre := GenreNone
	if fields.Has(KeyGenre) {
		genre = ParseGenre(fields.First(KeyGenre))
		if genre == GenreNone {
			// Key present with an empty value is not the same as no tag.
			genre = GenreUnknown
		}
	}
	slog.Debug("detected genre", "genre", genre.String())

	key := genre.titleKey()
	if key == "" {
		slog.Warn("unrecognized genre, leaving title empty", "genre", fields.First(KeyGenre))
		return "", nil
	}

	if !fields.Has(key) {
		return "", &ExtractionError{Field: key}
	}
	return fields.First(key), nil
}
