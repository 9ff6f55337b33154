// Package moderation masks censored words in message bodies before they are
// fanned out to sessions. Matching is case-insensitive and ignores
// punctuation, so "b a.d" still matches "bad" while the original spacing of
// the message is preserved in the output.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// NewModerator builds the Aho-Corasick automaton once from the word list.
// An empty list yields a moderator that passes everything through.
func NewModerator(censoredWords []string, replacement rune) (*Moderator, error) {
	if len(censoredWords) == 0 {
		return &Moderator{replacement: replacement}, nil
	}
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if folded, _ := fold([]rune(word)); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, replacement: replacement}, nil
}

// Censor returns the message with every censored span overwritten by the
// replacement rune. Positions are tracked through the folding step so the
// mask lands on the original characters.
func (m *Moderator) Censor(message string) string {
	if m.matcher == nil {
		return message
	}
	original := []rune(message)
	folded, origIdx := fold(original)
	if len(folded) == 0 {
		return message
	}

	spans := m.matcher.MultiPatternSearch(folded, false)
	if len(spans) == 0 {
		return message
	}
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	return string(original)
}

// fold lowercases the input and drops spacing and punctuation, returning the
// folded runes along with the index each one had in the original slice.
func fold(input []rune) ([]rune, []int) {
	folded := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))
	for i, r := range input {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return folded, origIdx
}
