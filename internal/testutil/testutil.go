package testutil

import (
	"multilingual/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int64, native, foreign string) domain.Word {
	return domain.Word{
		ID:      id,
		Native:  native,
		Foreign: foreign,
	}
}

// NewTestWords creates words with ids 1..n from native/foreign pairs
func NewTestWords(pairs ...[2]string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs))
	for i, p := range pairs {
		words = append(words, NewTestWord(int64(i+1), p[0], p[1]))
	}
	return words
}

// NewTestLanguagePair creates a test language pair
func NewTestLanguagePair(id int64, native, foreign string) domain.LanguagePair {
	return domain.LanguagePair{
		ID:      id,
		Native:  native,
		Foreign: foreign,
	}
}
