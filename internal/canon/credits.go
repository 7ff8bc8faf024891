package canon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// CreditSeparator joins collaborating artists after CleanArtistCredit.
const CreditSeparator = " - "

var creditSeparatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+x\s+`),
	regexp.MustCompile(`(?i)\s+feat\.?\s+`),
	regexp.MustCompile(`(?i)\s+featuring\s+`),
	regexp.MustCompile(`(?i)\s+&\s+`),
	regexp.MustCompile(`\s*,\s*`),
}

var quoteStripper = strings.NewReplacer(`"`, "", "'", "")

// SplitMultiValue splits a field that may name several entities, trims each
// piece, and drops empty pieces. An empty delimiter yields the trimmed input
// as a single piece.
func SplitMultiValue(raw, delimiter string) []string {
	if delimiter == "" {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	parts := strings.Split(raw, delimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CleanArtistCredit removes quotes and rewrites collaboration markers
// (" x ", " feat. ", " featuring ", " & ", ",") to CreditSeparator.
func CleanArtistCredit(credit string) string {
	credit = quoteStripper.Replace(credit)
	for _, pattern := range creditSeparatorPatterns {
		credit = pattern.ReplaceAllString(credit, CreditSeparator)
	}
	return strings.Join(strings.Fields(credit), " ")
}

// MainArtist returns the lead artist of a cleaned credit: the text before the
// first CreditSeparator. Hyphenated names such as "Jay-Z" survive because the
// separator is space-delimited.
func MainArtist(credit string) string {
	lead, _, _ := strings.Cut(credit, CreditSeparator)
	return strings.TrimSpace(lead)
}

var errListLiteral = errors.New("malformed list literal")

// ParseListLiteral decodes a bracketed list of quoted strings such as
// ['Dua Lipa', "Guns N' Roses"]. Both quote styles and backslash escapes are
// accepted.
func ParseListLiteral(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: missing brackets", errListLiteral)
	}
	s = s[1 : len(s)-1]

	var items []string
	expectItem := true
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == ',':
			if expectItem {
				return nil, fmt.Errorf("%w: empty element at offset %d", errListLiteral, i)
			}
			expectItem = true
			i++
		case c == '\'' || c == '"':
			if !expectItem {
				return nil, fmt.Errorf("%w: missing comma at offset %d", errListLiteral, i)
			}
			item, next, err := readQuoted(s, i)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			expectItem = false
			i = next
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", errListLiteral, c, i)
		}
	}
	if expectItem && len(items) > 0 {
		return nil, fmt.Errorf("%w: trailing comma", errListLiteral)
	}
	return items, nil
}

func readQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
			b.WriteByte(s[i])
		case c == quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated string at offset %d", errListLiteral, start)
}

// FirstListedArtist extracts the lead artist from a raw artists cell. Plain
// text is returned trimmed; list literals yield their first element. When a
// literal cannot be decoded, the brackets and quotes are stripped and the text
// before the first comma is used. The boolean is false when nothing usable
// remains.
func FirstListedArtist(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return trimmed, trimmed != ""
	}
	items, err := ParseListLiteral(trimmed)
	if err == nil {
		if len(items) == 0 {
			return "", false
		}
		first := strings.TrimSpace(items[0])
		return first, first != ""
	}
	cleaned := quoteStripper.Replace(strings.Trim(trimmed, "[]"))
	first, _, _ := strings.Cut(cleaned, ",")
	first = strings.TrimSpace(first)
	return first, first != ""
}
