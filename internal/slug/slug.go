// Package slug builds URL and anchor safe identifiers from free text.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSeparator joins the words of a slug.
const DefaultSeparator = "-"

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugifier turns text into lowercase ASCII tokens joined by a separator.
// Accented letters are reduced to their base letter before filtering.
type Slugifier struct {
	Separator string
}

// New returns a Slugifier using DefaultSeparator.
func New() *Slugifier {
	return &Slugifier{Separator: DefaultSeparator}
}

// Slugify returns the slug of text. It never returns leading, trailing or
// repeated separators; text without any letter or digit yields "".
func (s *Slugifier) Slugify(text string) string {
	sep := s.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	text = strings.ToLower(foldAccents(text))
	text = nonSlug.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), sep)
}

// foldAccents strips combining marks after canonical decomposition,
// so "Café" becomes "Cafe".
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
