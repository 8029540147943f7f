package annotate

import (
	"testing"
)

func TestAnnotate_Empty(t *testing.T) {
	tokens, spans := New().Annotate("   ")
	if tokens != nil || spans != nil {
		t.Errorf("Expected nil tokens and spans for blank input, got %v, %v", tokens, spans)
	}
}

func TestAnnotate_TokenOrderPreserved(t *testing.T) {
	tokens, _ := New().Annotate("graphs rank words")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	want := []string{"graph", "rank", "word"}
	for i, lemma := range want {
		if tokens[i].Lemma != lemma {
			t.Errorf("Token %d: expected lemma %q, got %q", i, lemma, tokens[i].Lemma)
		}
	}
}

func TestAnnotate_StopwordsFlagged(t *testing.T) {
	tokens, _ := New().Annotate("the dog and the cat")
	flags := []bool{true, false, true, true, false}
	for i, want := range flags {
		if tokens[i].Stopword != want {
			t.Errorf("Token %d (%q): expected stopword=%v", i, tokens[i].Lemma, want)
		}
	}
}

func TestAnnotate_SentenceSpans(t *testing.T) {
	tokens, spans := New().Annotate("Dogs run fast. Cats sleep all day!")
	if len(spans) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(spans), spans)
	}
	if spans[0].Start != 0 || spans[0].End != 3 {
		t.Errorf("First span: expected [0,3), got [%d,%d)", spans[0].Start, spans[0].End)
	}
	if spans[1].Start != 3 || spans[1].End != len(tokens) {
		t.Errorf("Second span: expected [3,%d), got [%d,%d)", len(tokens), spans[1].Start, spans[1].End)
	}
}

func TestAnnotate_AbbreviationDoesNotSplit(t *testing.T) {
	_, spans := New().Annotate("Dr. Smith studies graphs. Ranking works.")
	if len(spans) != 2 {
		t.Errorf("Expected abbreviation to stay inside the sentence, got %d spans: %v", len(spans), spans)
	}
}

func TestAnnotate_ProperNounMidSentence(t *testing.T) {
	tokens, _ := New().Annotate("the city of Berlin")
	last := tokens[len(tokens)-1]
	if last.Tag != TagProperNoun {
		t.Errorf("Expected Berlin to be tagged PROPN, got %s", last.Tag)
	}
}

func TestAnnotate_SuffixTagging(t *testing.T) {
	tests := []struct {
		word string
		tag  Tag
	}{
		{"beautiful", TagAdjective},
		{"quickly", TagAdverb},
		{"summarize", TagVerb},
		{"dog", TagNoun},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			tokens, _ := New().Annotate("saw " + tc.word + " here")
			if tokens[1].Tag != tc.tag {
				t.Errorf("Expected %q tagged %s, got %s", tc.word, tc.tag, tokens[1].Tag)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	got := New().Sentences("Graphs rank words. Sentences rank too.")
	if len(got) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "Graphs rank words" {
		t.Errorf("Unexpected first sentence: %q", got[0])
	}
	if got[1] != "Sentences rank too" {
		t.Errorf("Unexpected second sentence: %q", got[1])
	}
}

func TestAnnotate_HyphenAndApostropheStaySingleTokens(t *testing.T) {
	tokens, _ := New().Annotate("co-occurrence doesn't split")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Lemma != "co-occurrence" {
		t.Errorf("Expected hyphenated token preserved, got %q", tokens[0].Lemma)
	}
}
