package links

import (
	"regexp"
	"strings"
)

const DefaultDelimiter = "#"

// Extractor pulls the numeric document identifier out of a file name, i.e. the
// first run of digits immediately followed by the delimiter.
type Extractor struct {
	re *regexp.Regexp
}

var extractor = NewExtractor(DefaultDelimiter)

func NewExtractor(delimiter string) Extractor {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	return Extractor{
		re: regexp.MustCompile(`([0-9]+)` + regexp.QuoteMeta(delimiter)),
	}
}

func (x Extractor) Extract(name string) (string, bool) {
	if match := x.re.FindStringSubmatch(name); len(match) > 1 {
		return match[1], true
	}

	return "", false
}

// ExtractDocumentID extracts the identifier using the default '#' delimiter.
func ExtractDocumentID(name string) (string, bool) {
	return extractor.Extract(name)
}

// Normalise strips surrounding whitespace and leading zeros so that spreadsheet
// cells and file identifiers compare equal ("00042" == "42"). An all-zero or
// empty value normalises to "".
func Normalise(v string) string {
	return strings.TrimLeft(strings.TrimSpace(v), "0")
}
