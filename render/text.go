package render

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SachinthaLakshan/evite-new-edition/catalog"
)

var (
	strict   = bluemonday.StrictPolicy()
	upper    = cases.Upper(language.English)
	hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// Plain collapses whitespace in user text. Markup characters are kept as
// literal text; both writers escape them.
func Plain(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Upper uppercases s using English casing rules.
func Upper(s string) string {
	return upper.String(s)
}

// SafeColor reports whether c is a hex color both writers accept.
func SafeColor(c string) bool {
	return hexColor.MatchString(c)
}

// safeFont reports whether f is a font family name free of markup, quotes
// and entities, so it can be written into a font-family attribute as is.
func safeFont(f string) bool {
	return f != "" && strict.Sanitize(f) == f
}

// ResolveStyling replaces blank or unsafe fonts and unsafe colors with
// fallback values.
func ResolveStyling(s, fallback catalog.Styling) catalog.Styling {
	s.FontFamily = Plain(s.FontFamily)
	if !safeFont(s.FontFamily) {
		s.FontFamily = fallback.FontFamily
	}
	if !SafeColor(s.PrimaryColor) {
		s.PrimaryColor = fallback.PrimaryColor
	}
	if !SafeColor(s.SecondaryColor) {
		s.SecondaryColor = fallback.SecondaryColor
	}
	if !SafeColor(s.TextColor) {
		s.TextColor = fallback.TextColor
	}
	return s
}

// Wrap breaks s into lines no wider than width. A word wider than width is
// split between runes.
func Wrap(s string, st Style, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		if line != "" {
			if next := line + " " + word; TextWidth(next, st) <= width {
				line = next
				continue
			}
			lines = append(lines, line)
			line = ""
		}
		for word != "" && TextWidth(word, st) > width {
			head, rest := fit(word, st, width)
			lines = append(lines, head)
			word = rest
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// fit splits s after the longest prefix that fits width. The prefix holds at
// least one rune.
func fit(s string, st Style, width float64) (string, string) {
	r := []rune(s)
	n := 1
	for n < len(r) && TextWidth(string(r[:n+1]), st) <= width {
		n++
	}
	return string(r[:n]), string(r[n:])
}

// Truncate shortens s with a trailing ellipsis until it fits width.
func Truncate(s string, st Style, width float64) string {
	if TextWidth(s, st) <= width {
		return s
	}
	r := []rune(s)
	for n := len(r) - 1; n > 0; n-- {
		if c := strings.TrimRight(string(r[:n]), " ") + "…"; TextWidth(c, st) <= width {
			return c
		}
	}
	return "…"
}
