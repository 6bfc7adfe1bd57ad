// Package game implements the practice games played over the saved words.
package game

import (
	"errors"
	"math/rand"

	"multilingual/internal/domain"
)

// Common errors
var (
	ErrNoWords        = errors.New("no words to play with")
	ErrGameOver       = errors.New("round is over")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrInvalidGuess   = errors.New("guess must be a letter")
)

// Result is the outcome of the last answer in a round
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultWrong
)

// deck walks a word list in order starting from a random position
type deck struct {
	words []domain.Word
	index int
}

func newDeck(words []domain.Word, rng *rand.Rand) (deck, error) {
	if len(words) == 0 {
		return deck{}, ErrNoWords
	}
	return deck{
		words: copyWords(words),
		index: rng.Intn(len(words)),
	}, nil
}

func (d *deck) current() domain.Word {
	return d.words[d.index]
}

func (d *deck) advance() {
	d.index = (d.index + 1) % len(d.words)
}

// replace swaps the word list and keeps the position in range
func (d *deck) replace(words []domain.Word) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	d.words = copyWords(words)
	if d.index >= len(d.words) {
		d.index = len(d.words) - 1
	}
	return nil
}

func copyWords(words []domain.Word) []domain.Word {
	out := make([]domain.Word, len(words))
	copy(out, words)
	return out
}
