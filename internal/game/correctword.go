package game

import (
	"math/rand"

	"multilingual/internal/domain"
)

// CorrectWord shows a native term and expects its foreign translation
type CorrectWord struct {
	deck
	result Result
}

// NewCorrectWord starts a round at a random word
func NewCorrectWord(words []domain.Word, rng *rand.Rand) (*CorrectWord, error) {
	d, err := newDeck(words, rng)
	if err != nil {
		return nil, err
	}
	return &CorrectWord{deck: d}, nil
}

// Current returns the word being asked
func (g *CorrectWord) Current() domain.Word {
	return g.current()
}

// Index returns the position of the current word
func (g *CorrectWord) Index() int {
	return g.index
}

// Prompt returns the native term to translate
func (g *CorrectWord) Prompt() string {
	return g.current().Native
}

// Check compares the answer with the foreign term exactly, case included
func (g *CorrectWord) Check(answer string) bool {
	ok := answer == g.current().Foreign
	if ok {
		g.result = ResultCorrect
	} else {
		g.result = ResultWrong
	}
	return ok
}

// Result returns the outcome of the last Check since the word was shown
func (g *CorrectWord) Result() Result {
	return g.result
}

// Next moves to the following word, wrapping at the end
func (g *CorrectWord) Next() {
	g.advance()
	g.result = ResultNone
}

// SetWords replaces the word list after the collection changed. A verdict
// only survives while the same word stays on screen.
func (g *CorrectWord) SetWords(words []domain.Word) error {
	before := g.current()
	if err := g.replace(words); err != nil {
		return err
	}
	if g.current() != before {
		g.result = ResultNone
	}
	return nil
}
