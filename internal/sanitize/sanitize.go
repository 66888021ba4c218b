// Package sanitize normalizes raw post text into a string that is safe to
// serialize and to embed in a completion prompt. Input frequently arrives
// double-escaped or with encoding damage from upstream scrapers.
package sanitize

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\t`, "\t")

// Clean returns a valid UTF-8 copy of text with lone surrogate code points
// removed and literal \n / \t sequences unescaped. It never fails: if the
// normal pass cannot produce valid UTF-8, a stricter pass that keeps only
// the Basic Multilingual Plane is applied instead.
func Clean(text string) string {
	cleaned, err := clean(text)
	if err != nil {
		log.Warnf("Unicode cleaning error: %v", err)
		return strictClean(text)
	}
	return cleaned
}

func clean(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	// Surrogate halves show up either as decoded runes (when an upstream
	// decoder was lenient) or as raw WTF-8 byte sequences that Go reports
	// as invalid UTF-8. Drop both.
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if utf16.IsSurrogate(r) {
			i += size
			continue
		}
		b.WriteRune(r)
		i += size
	}

	cleaned := escapeReplacer.Replace(b.String())
	cleaned = strings.ToValidUTF8(cleaned, "")

	if !utf8.ValidString(cleaned) {
		return "", fmt.Errorf("text still invalid UTF-8 after cleaning")
	}
	return cleaned, nil
}

// strictClean replaces every code point outside the Basic Latin and Basic
// Multilingual Plane ranges with a space.
func strictClean(text string) string {
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || r > 0xFFFF || utf16.IsSurrogate(r) {
			return ' '
		}
		return r
	}, text)
}
