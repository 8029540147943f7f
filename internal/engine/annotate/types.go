package annotate

// Tag is a coarse part-of-speech class assigned by the annotator.
type Tag uint8

const (
	TagOther Tag = iota
	TagNoun
	TagProperNoun
	TagAdjective
	TagVerb
	TagAdverb
)

func (t Tag) String() string {
	switch t {
	case TagNoun:
		return "NOUN"
	case TagProperNoun:
		return "PROPN"
	case TagAdjective:
		return "ADJ"
	case TagVerb:
		return "VERB"
	case TagAdverb:
		return "ADV"
	default:
		return "OTHER"
	}
}

// Token is one annotated word, in original document order.
// Immutable once produced; scoped to a single document.
type Token struct {
	Lemma    string
	Tag      Tag
	Stopword bool
}

// Span marks a sentence boundary as [Start, End) token offsets.
type Span struct {
	Start int
	End   int
}
