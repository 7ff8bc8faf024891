package canon

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEncoding reports text that is not valid UTF-8 and therefore has no
// canonical form.
var ErrEncoding = errors.New("text is not valid utf-8")

// newFolder returns a transformer that decomposes compatibility characters
// and drops combining marks. Chains keep internal state, so each call site
// gets its own.
func newFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

// Normalize returns the canonical form of text. The result contains only
// [a-z0-9] and single interior spaces. Invalid UTF-8 sequences are dropped;
// use NormalizeStrict to reject them instead.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	folded, _, err := transform.String(newFolder(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		r = unicode.ToLower(r)
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	return b.String()
}

// NormalizeStrict is Normalize for callers that must not silently repair
// malformed input.
func NormalizeStrict(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrEncoding
	}
	return Normalize(text), nil
}
