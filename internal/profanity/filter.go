// Package profanity implements multi-script content moderation over
// per-language word tables. Matching is case-insensitive with word-boundary
// semantics that work across writing systems: Go's regexp \b only
// understands ASCII word characters, so boundaries are expressed as
// "not a Unicode letter, digit or underscore" on both sides of the word.
package profanity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ValidationResult reports the outcome of a moderation check.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Message    string   `json:"message"`
	FoundWords []string `json:"foundWords"`
}

type wordPattern struct {
	word    string
	pattern *regexp.Regexp
}

// Filter holds the compiled word tables. Build once at startup with New;
// the structure is immutable afterwards and safe for concurrent use.
type Filter struct {
	langCodes    []string                  // sorted, for deterministic iteration
	langPatterns map[string]*regexp.Regexp // per-language alternation
	wordPatterns map[string][]wordPattern  // per-language, table order
}

// New compiles the built-in profanity tables.
func New() *Filter {
	f := &Filter{
		langPatterns: make(map[string]*regexp.Regexp, len(profanityWords)),
		wordPatterns: make(map[string][]wordPattern, len(profanityWords)),
	}

	for lang, words := range profanityWords {
		f.langCodes = append(f.langCodes, lang)

		quoted := make([]string, len(words))
		patterns := make([]wordPattern, len(words))
		for i, word := range words {
			quoted[i] = regexp.QuoteMeta(word)
			patterns[i] = wordPattern{
				word:    word,
				pattern: regexp.MustCompile(boundaryPattern(quoted[i])),
			}
		}

		f.langPatterns[lang] = regexp.MustCompile(boundaryPattern(strings.Join(quoted, "|")))
		f.wordPatterns[lang] = patterns
	}

	sort.Strings(f.langCodes)
	return f
}

// boundaryPattern wraps the word alternation in Unicode-aware boundaries.
// The word itself is capture group 1; the boundary runes stay outside it.
// Combining marks count as word characters so that Indic matras attached
// to a neighbouring word do not open a boundary mid-word.
func boundaryPattern(alternation string) string {
	return `(?i)(?:\A|[^\p{L}\p{M}\p{N}_])(` + alternation + `)(?:[^\p{L}\p{M}\p{N}_]|\z)`
}

// findWordSpans returns the byte spans of capture group 1 for every match.
// Scanning resumes directly after the matched word rather than after the
// whole match, so adjacent profanities separated by a single rune are both
// found (the separator serves as trailing and leading boundary in turn).
func findWordSpans(re *regexp.Regexp, text string) [][2]int {
	var spans [][2]int
	pos := 0
	for pos <= len(text) {
		m := re.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[2], pos+m[3]
		if end <= pos {
			break
		}
		spans = append(spans, [2]int{start, end})
		pos = end
	}
	return spans
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Contains reports whether the text matches any language's table.
// Blank input never matches.
func (f *Filter) Contains(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	normalized := normalize(text)
	for _, lang := range f.langCodes {
		if len(findWordSpans(f.langPatterns[lang], normalized)) > 0 {
			return true
		}
	}
	return false
}

// ContainsLang checks the text against a single language's table. An
// unknown language code falls back to the all-language check.
func (f *Filter) ContainsLang(text, langCode string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	pattern, ok := f.langPatterns[langCode]
	if !ok {
		return f.Contains(text)
	}
	return len(findWordSpans(pattern, normalize(text))) > 0
}

// Find returns every table word that matches the text, in language-code
// order then table order. A word shared between two language tables is
// reported once per table; the result is a list, not a set.
func (f *Filter) Find(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}

	normalized := normalize(text)
	for _, lang := range f.langCodes {
		for _, wp := range f.wordPatterns[lang] {
			if len(findWordSpans(wp.pattern, normalized)) > 0 {
				found = append(found, wp.word)
			}
		}
	}
	return found
}

// Censor replaces every matched word with its first rune followed by
// asterisks, one per remaining rune. Surrounding text is preserved
// verbatim and the rune length of the input never changes.
func (f *Filter) Censor(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	result := text
	for _, lang := range f.langCodes {
		result = censorMatches(f.langPatterns[lang], result)
	}
	return result
}

func censorMatches(re *regexp.Regexp, text string) string {
	spans := findWordSpans(re, text)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		runes := []rune(text[span[0]:span[1]])
		b.WriteRune(runes[0])
		b.WriteString(strings.Repeat("*", len(runes)-1))
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Validate combines Contains and Find into a single moderation verdict.
func (f *Filter) Validate(text string) ValidationResult {
	if f.Contains(text) {
		found := f.Find(text)
		return ValidationResult{
			Valid:      false,
			Message:    fmt.Sprintf("Content contains inappropriate language: %s", strings.Join(found, ", ")),
			FoundWords: found,
		}
	}
	return ValidationResult{
		Valid:      true,
		Message:    "Content is appropriate",
		FoundWords: []string{},
	}
}

// SupportedLanguages returns the language codes covered by the tables.
func (f *Filter) SupportedLanguages() []string {
	codes := make([]string, len(f.langCodes))
	copy(codes, f.langCodes)
	return codes
}
