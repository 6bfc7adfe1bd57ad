package game

import (
	"math/rand"

	"multilingual/internal/domain"
)

// Anagram shows the foreign term with its letters shuffled
type Anagram struct {
	deck
	rng       *rand.Rand
	scrambled string
	result    Result
}

// NewAnagram starts a round at a random word
func NewAnagram(words []domain.Word, rng *rand.Rand) (*Anagram, error) {
	d, err := newDeck(words, rng)
	if err != nil {
		return nil, err
	}
	g := &Anagram{deck: d, rng: rng}
	g.scrambled = Scramble(g.current().Foreign, rng)
	return g, nil
}

// Current returns the word being asked
func (g *Anagram) Current() domain.Word {
	return g.current()
}

// Scrambled returns the shuffled foreign term
func (g *Anagram) Scrambled() string {
	return g.scrambled
}

// Hint returns the native term
func (g *Anagram) Hint() string {
	return g.current().Native
}

// Check compares the answer with the foreign term exactly
func (g *Anagram) Check(answer string) bool {
	ok := answer == g.current().Foreign
	if ok {
		g.result = ResultCorrect
	} else {
		g.result = ResultWrong
	}
	return ok
}

// Result returns the outcome of the last Check
func (g *Anagram) Result() Result {
	return g.result
}

// Next moves to the following word and scrambles it
func (g *Anagram) Next() {
	g.advance()
	g.result = ResultNone
	g.scrambled = Scramble(g.current().Foreign, g.rng)
}

// SetWords replaces the word list. The puzzle is rescrambled only when the
// current word changed.
func (g *Anagram) SetWords(words []domain.Word) error {
	before := g.current()
	if err := g.replace(words); err != nil {
		return err
	}
	if g.current() != before {
		g.result = ResultNone
		g.scrambled = Scramble(g.current().Foreign, g.rng)
	}
	return nil
}

// Scramble shuffles the runes of s. The result differs from s whenever s
// has at least two distinct runes.
func Scramble(s string, rng *rand.Rand) string {
	runes := []rune(s)
	if !hasDistinct(runes) {
		return s
	}
	for {
		rng.Shuffle(len(runes), func(i, j int) {
			runes[i], runes[j] = runes[j], runes[i]
		})
		if out := string(runes); out != s {
			return out
		}
	}
}

func hasDistinct(runes []rune) bool {
	for _, r := range runes[min(1, len(runes)):] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
