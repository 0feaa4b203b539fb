package statamic

import (
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// InjectLink wraps the work's title inside a rendered citation in an
// anchor tag pointing at uploadURL. The citation styles titles with its
// own capitalization, so the title is located case-insensitively and the
// citation's own casing is what ends up inside the anchor. When the title
// cannot be found the citation is returned untouched.
func InjectLink(citation, uploadURL, title string) string {
	if title == "" {
		return citation
	}

	start, end, ok := foldIndex(citation, title)
	if !ok {
		slog.Warn("title not found in citation text, leaving unlinked", "title", title)
		return citation
	}

	styled := citation[start:end]
	return citation[:start] + `<a href="` + uploadURL + `">` + styled + `</a>` + citation[end:]
}

// foldIndex locates needle in haystack ignoring case and returns byte
// offsets into haystack. Folding runs rune by rune; lowercasing a whole
// string can change its byte length, which would shift every offset
// after the affected rune.
func foldIndex(haystack, needle string) (start, end int, ok bool) {
	hay := []rune(haystack)
	want := []rune(needle)
	for i := range want {
		want[i] = unicode.ToLower(want[i])
	}
	if len(want) == 0 || len(want) > len(hay) {
		return 0, 0, false
	}

	// Byte offset of each rune boundary in the original citation.
	bounds := make([]int, len(hay)+1)
	for i, r := range hay {
		bounds[i+1] = bounds[i] + utf8.RuneLen(r)
	}

	for i := 0; i+len(want) <= len(hay); i++ {
		matched := true
		for j, w := range want {
			if unicode.ToLower(hay[i+j]) != w {
				matched = false
				break
			}
		}
		if matched {
			return bounds[i], bounds[i+len(want)], true
		}
	}
	return 0, 0, false
}
