package report

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UntitledPlaceholder is used when an entry has neither name nor path.
const UntitledPlaceholder = "Untitled"

var (
	romanNumeral = regexp.MustCompile(`^X{0,3}(?:IX|IV|V?I{0,3})$`)
	whitespace   = regexp.MustCompile(`\s+`)

	// Acronyms like NBA or SNK. Short all-caps words (THE, OF) match too.
	shortCode = regexp.MustCompile(`^[A-Z]{1,3}$`)
)

// Title derives the display title from the resolved name. Roman numerals,
// tokens with digits and short all-caps codes keep their spelling; other
// tokens are title-cased. Whitespace runs are kept as they are.
func Title(resolved, raw string) string {
	if strings.TrimSpace(resolved) == "" {
		if raw != "" {
			return raw
		}
		return UntitledPlaceholder
	}

	caser := cases.Title(language.Und)
	var b strings.Builder
	last := 0
	for _, loc := range whitespace.FindAllStringIndex(resolved, -1) {
		b.WriteString(transformToken(caser, resolved[last:loc[0]]))
		b.WriteString(resolved[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(transformToken(caser, resolved[last:]))
	return b.String()
}

func transformToken(caser cases.Caser, tok string) string {
	if tok == "" || keepVerbatim(tok) {
		return tok
	}
	return caser.String(tok)
}

// keepVerbatim looks at the token without surrounding punctuation.
func keepVerbatim(tok string) bool {
	core := strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if core == "" {
		return true
	}
	if strings.IndexFunc(core, unicode.IsDigit) >= 0 {
		return true
	}
	return romanNumeral.MatchString(core) || shortCode.MatchString(core)
}
