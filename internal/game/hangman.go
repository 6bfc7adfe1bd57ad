package game

import (
	"math/rand"
	"slices"
	"strings"
	"unicode"

	"multilingual/internal/domain"
)

// DefaultMaxMistakes is the number of misses allowed before a round is lost
const DefaultMaxMistakes = 6

// HangmanState is the state of a hangman round
type HangmanState int

const (
	HangmanInProgress HangmanState = iota
	HangmanWon
	HangmanLost
)

func (s HangmanState) String() string {
	switch s {
	case HangmanWon:
		return "won"
	case HangmanLost:
		return "lost"
	default:
		return "in progress"
	}
}

// Hangman hides the foreign term of a random word and reveals it letter by letter
type Hangman struct {
	words       []domain.Word
	index       int
	rng         *rand.Rand
	maxMistakes int

	target   []rune
	revealed []bool
	guessed  map[rune]bool
	misses   int
	state    HangmanState
}

// NewHangman starts a round on a random word. A non-positive maxMistakes
// falls back to DefaultMaxMistakes.
func NewHangman(words []domain.Word, maxMistakes int, rng *rand.Rand) (*Hangman, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if maxMistakes <= 0 {
		maxMistakes = DefaultMaxMistakes
	}
	g := &Hangman{
		words:       copyWords(words),
		rng:         rng,
		maxMistakes: maxMistakes,
	}
	g.start(rng.Intn(len(g.words)))
	return g, nil
}

func (g *Hangman) start(index int) {
	g.index = index
	g.target = []rune(g.words[index].Foreign)
	g.revealed = make([]bool, len(g.target))
	g.guessed = make(map[rune]bool)
	g.misses = 0
	g.state = HangmanInProgress

	for i, r := range g.target {
		if !unicode.IsLetter(r) {
			g.revealed[i] = true
		}
	}
	g.checkWon()
}

// Guess plays a letter. It reports whether the letter occurs in the word.
func (g *Hangman) Guess(letter rune) (bool, error) {
	if g.state != HangmanInProgress {
		return false, ErrGameOver
	}
	if !unicode.IsLetter(letter) {
		return false, ErrInvalidGuess
	}

	letter = unicode.ToLower(letter)
	if g.guessed[letter] {
		return false, ErrAlreadyGuessed
	}
	g.guessed[letter] = true

	hit := false
	for i, r := range g.target {
		if unicode.ToLower(r) == letter {
			g.revealed[i] = true
			hit = true
		}
	}

	if !hit {
		g.misses++
		if g.misses >= g.maxMistakes {
			g.state = HangmanLost
			return false, nil
		}
	}
	g.checkWon()
	return hit, nil
}

func (g *Hangman) checkWon() {
	for _, ok := range g.revealed {
		if !ok {
			return
		}
	}
	g.state = HangmanWon
}

// Masked renders the word with hidden letters as underscores, e.g. "_ _ a _"
func (g *Hangman) Masked() string {
	parts := make([]string, len(g.target))
	for i, r := range g.target {
		if g.revealed[i] {
			parts[i] = string(r)
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}

// Hint returns the native term of the hidden word
func (g *Hangman) Hint() string {
	return g.words[g.index].Native
}

// Answer returns the hidden foreign term
func (g *Hangman) Answer() string {
	return g.words[g.index].Foreign
}

// State returns the round state
func (g *Hangman) State() HangmanState {
	return g.state
}

// Misses returns the number of wrong guesses so far
func (g *Hangman) Misses() int {
	return g.misses
}

// MistakesLeft returns how many more misses the round tolerates
func (g *Hangman) MistakesLeft() int {
	return g.maxMistakes - g.misses
}

// Guessed returns the letters tried so far in alphabetical order
func (g *Hangman) Guessed() []rune {
	out := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// Next starts a new round on another random word
func (g *Hangman) Next() {
	n := len(g.words)
	next := 0
	if n > 1 {
		next = (g.index + 1 + g.rng.Intn(n-1)) % n
	}
	g.start(next)
}

// SetWords replaces the word pool. The running round keeps its word unless
// that word is gone, in which case a new round starts.
func (g *Hangman) SetWords(words []domain.Word) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	current := g.words[g.index]
	g.words = copyWords(words)

	for i, w := range g.words {
		if w == current {
			g.index = i
			return nil
		}
	}
	g.start(g.rng.Intn(len(g.words)))
	return nil
}
