package domain

import "strings"

// Word represents a native/foreign word pair
type Word struct {
	ID      int64
	Native  string
	Foreign string
}

// NewWord builds an unsaved word pair, rejecting empty terms
func NewWord(native, foreign string) (Word, error) {
	w := Word{Native: native, Foreign: foreign}
	if err := w.Validate(); err != nil {
		return Word{}, err
	}
	return w, nil
}

// Validate checks that both terms are present
func (w Word) Validate() error {
	if strings.TrimSpace(w.Native) == "" || strings.TrimSpace(w.Foreign) == "" {
		return ErrEmptyField
	}
	return nil
}

// ByNative orders words by native term, then by id for equal terms
func ByNative(a, b Word) int {
	switch {
	case a.Native < b.Native:
		return -1
	case a.Native > b.Native:
		return 1
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}
