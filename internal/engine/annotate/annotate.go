// Package annotate provides a deterministic heuristic text annotator:
// word tokenization, sentence segmentation with an abbreviation guard,
// lowercase lemmatization with light suffix stripping, and coarse
// part-of-speech tagging. It is the default implementation behind the
// annotator port; callers with a real tagger can swap it out.
package annotate

import (
	"strings"
	"unicode"
)

// word is an intermediate tokenization record before tagging.
type word struct {
	text          string
	sentenceStart bool
}

// Annotator is the built-in heuristic annotator. Zero-value ready.
type Annotator struct{}

func New() *Annotator {
	return &Annotator{}
}

// Annotate splits text into tagged tokens and sentence spans. The spans
// index into the token slice as [Start, End) offsets, in document order.
// Empty or whitespace-only text yields no tokens and no spans.
func (a *Annotator) Annotate(text string) ([]Token, []Span) {
	words := tokenize(text)
	if len(words) == 0 {
		return nil, nil
	}

	tokens := make([]Token, len(words))
	spans := make([]Span, 0, 4)
	start := 0
	for i, w := range words {
		if w.sentenceStart && i > 0 {
			spans = append(spans, Span{Start: start, End: i})
			start = i
		}
		tokens[i] = tag(w.text, w.sentenceStart)
	}
	spans = append(spans, Span{Start: start, End: len(words)})
	return tokens, spans
}

// abbreviations that end with a period without ending the sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"fig": true, "al": true, "eg": true, "ie": true, "no": true,
}

func tokenize(text string) []word {
	words := make([]word, 0, len(text)/6)
	runes := []rune(text)
	atSentenceStart := true

	i := 0
	for i < len(runes) {
		r := runes[i]
		if !isWordRune(r) {
			if r == '.' || r == '!' || r == '?' {
				if !pendingAbbreviation(words, r) {
					atSentenceStart = true
				}
			}
			i++
			continue
		}

		j := i
		for j < len(runes) && (isWordRune(runes[j]) || isInnerRune(runes, j)) {
			j++
		}
		words = append(words, word{
			text:          string(runes[i:j]),
			sentenceStart: atSentenceStart,
		})
		atSentenceStart = false
		i = j
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isInnerRune admits hyphens and apostrophes between word runes so that
// "co-occurrence" and "don't" stay single tokens.
func isInnerRune(runes []rune, i int) bool {
	r := runes[i]
	if r != '-' && r != '\'' && r != '’' {
		return false
	}
	return i+1 < len(runes) && isWordRune(runes[i+1])
}

// pendingAbbreviation reports whether a period right after the last token
// belongs to a known abbreviation rather than a sentence end.
func pendingAbbreviation(words []word, punct rune) bool {
	if punct != '.' || len(words) == 0 {
		return false
	}
	last := strings.ToLower(words[len(words)-1].text)
	if abbreviations[last] {
		return true
	}
	// Single letters ("J. Smith") are initials, not sentence ends.
	return len(last) == 1
}

var (
	adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish", "ical", "al", "ic"}
	adverbSuffix      = "ly"
	verbSuffixes      = []string{"ize", "ise", "ify", "ate"}
)

func tag(text string, sentenceStart bool) Token {
	lower := strings.ToLower(text)

	if IsStopword(lower) {
		return Token{Lemma: lower, Tag: TagOther, Stopword: true}
	}

	// Mid-sentence capitalization marks a proper noun; sentence-initial
	// capitalization is ambiguous and falls through to the suffix rules.
	first := []rune(text)[0]
	if unicode.IsUpper(first) && !sentenceStart {
		return Token{Lemma: lemmatize(lower), Tag: TagProperNoun}
	}

	switch {
	case strings.HasSuffix(lower, adverbSuffix) && len(lower) > 4:
		return Token{Lemma: lower, Tag: TagAdverb}
	case hasAnySuffix(lower, adjectiveSuffixes) && len(lower) > 4:
		return Token{Lemma: lower, Tag: TagAdjective}
	case hasAnySuffix(lower, verbSuffixes) && len(lower) > 5:
		return Token{Lemma: lower, Tag: TagVerb}
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		return Token{Lemma: strings.TrimSuffix(lower, "ing"), Tag: TagVerb}
	}
	return Token{Lemma: lemmatize(lower), Tag: TagNoun}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// lemmatize applies light, deterministic normalization: possessive and
// plural stripping. It is intentionally shallow; a proper lemmatizer can
// replace the whole annotator via the port.
func lemmatize(lower string) string {
	lower = strings.TrimSuffix(lower, "'s")
	lower = strings.TrimSuffix(lower, "’s")
	if strings.HasSuffix(lower, "ies") && len(lower) > 4 {
		return lower[:len(lower)-3] + "y"
	}
	if strings.HasSuffix(lower, "sses") {
		return lower[:len(lower)-2]
	}
	if strings.HasSuffix(lower, "s") && len(lower) > 3 &&
		!strings.HasSuffix(lower, "ss") && !strings.HasSuffix(lower, "us") && !strings.HasSuffix(lower, "is") {
		return lower[:len(lower)-1]
	}
	return lower
}

// Sentences cuts the original text into sentence strings using the same
// boundary rules as Annotate, so summary output can be mapped back to text.
func (a *Annotator) Sentences(text string) []string {
	words := tokenize(text)
	if len(words) == 0 {
		return nil
	}

	// Reconstruct sentence strings from token runs; joining with single
	// spaces is enough since ranking only needs stable sentence identity.
	sentences := make([]string, 0, 4)
	var current []string
	for i, w := range words {
		if w.sentenceStart && i > 0 && len(current) > 0 {
			sentences = append(sentences, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, w.text)
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}
	return sentences
}
