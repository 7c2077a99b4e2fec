// Package extract locates labeled values and sections in free-form model
// output. Matching is heuristic: the nearest plausible boundary after a
// label wins, and a value that cannot be found is reported as absent rather
// than as an error.
package extract

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// markerRe matches the leading ordinal/bullet run of a list line: any mix of
// digits, periods, dashes, asterisks and whitespace at the start of the line.
var markerRe = regexp.MustCompile(`^[\d.\-*\s]+`)

var regexCache sync.Map // pattern -> *regexp.Regexp

func compile(pattern string) *regexp.Regexp {
	if re, ok := regexCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	regexCache.Store(pattern, re)
	return re
}

// Scalar returns the rest of the first line carrying the label, trimmed.
// The label match is case-insensitive and the colon after it is optional.
// A match that trims down to nothing counts as absent.
func Scalar(text, label string) (string, bool) {
	re := compile(`(?i:` + regexp.QuoteMeta(label) + `):?\s*([^\n]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return "", false
	}
	return v, true
}

// Keyword tries each label synonym as a scalar extraction in the declared
// priority order and returns the first hit.
func Keyword(text string, labels ...string) (string, bool) {
	for _, label := range labels {
		if v, ok := Scalar(text, label); ok {
			return v, true
		}
	}
	return "", false
}

// Section captures the body that follows the label: the remainder of the
// label line plus every following line up to a blank line or a line that
// starts with a capital letter (taken as the next heading). A newline
// directly after the label belongs to the label, so a body starting on the
// next line is body, not a heading. When final is set, running out of text
// also closes the section; otherwise an unclosed section is absent. A body
// that trims down to nothing is absent as well.
func Section(text, label string, final bool) (string, bool) {
	re := compile(`(?i:` + regexp.QuoteMeta(label) + `):?[ \t]*\n?`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	lines := strings.Split(text[loc[1]:], "\n")
	terminated := false
	var body []string
	for i, line := range lines {
		if i > 0 {
			if strings.TrimSpace(line) == "" || startsUpper(line) {
				terminated = true
				break
			}
		}
		body = append(body, line)
	}
	if !terminated && !final {
		return "", false
	}

	s := strings.TrimSpace(strings.Join(body, "\n"))
	if s == "" {
		return "", false
	}
	return s, true
}

// Items splits a section body into list items, stripping the leading
// ordinal/bullet marker from each line. Zero surviving items is absent, not
// an empty list: absence is what triggers default substitution upstream.
func Items(text, label string, final bool) ([]string, bool) {
	body, ok := Section(text, label, final)
	if !ok {
		return nil, false
	}

	var items []string
	for _, line := range strings.Split(body, "\n") {
		item := strings.TrimSpace(markerRe.ReplaceAllString(line, ""))
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func startsUpper(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}
