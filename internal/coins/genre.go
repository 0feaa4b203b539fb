package coins

// Genre is the work-type tag optionally present in encoded metadata. It
// decides which field carries the work's own title.
type Genre int

const (
	// GenreNone means no genre tag was present. Presentations, media, and
	// dissertations are exported without one; their title is in rft.title.
	GenreNone Genre = iota
	GenreArticle
	GenreBook
	GenreBookItem
	GenreProceeding
	// GenreUnknown is any genre value this package does not recognize.
	GenreUnknown
)

// ParseGenre maps a raw genre value onto the enum. The empty string maps
// to GenreNone so callers can feed Fields.First(KeyGenre) directly when
// the key is absent.
func ParseGenre(raw string) Genre {
	switch raw {
	case "":
		return GenreNone
	case "article":
		return GenreArticle
	case "book":
		return GenreBook
	case "bookitem":
		return GenreBookItem
	case "proceeding":
		return GenreProceeding
	default:
		return GenreUnknown
	}
}

func (g Genre) String() string {
	switch g {
	case GenreNone:
		return "none"
	case GenreArticle:
		return "article"
	case GenreBook:
		return "book"
	case GenreBookItem:
		return "bookitem"
	case GenreProceeding:
		return "proceeding"
	default:
		return "unknown"
	}
}

// titleKey returns the field holding the work's own title for this genre,
// or "" when the genre is unrecognized and no title should be read.
func (g Genre) titleKey() string {
	switch g {
	case GenreNone:
		return KeyTitle
	case GenreArticle, GenreBookItem, GenreProceeding:
		return KeyArticle
	case GenreBook:
		return KeyBookTitle
	default:
		return ""
	}
}
