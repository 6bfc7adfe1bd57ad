package handler

import (
	"context"
	"errors"

	"multilingual/internal/domain"
	"multilingual/internal/game"

	"go.uber.org/zap"
)

// Watch keeps running games in step with the word collection until ctx is
// done or the collection is closed
func (h *Handler) Watch(ctx context.Context) {
	sub := h.wordService.Words().Subscribe()
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case words, ok := <-sub.C():
			if !ok {
				return
			}
			h.syncGames(words)
		}
	}
}

// syncGames hands the new word list to every running game. A game whose
// words are all gone is stopped.
func (h *Handler) syncGames(words []domain.Word) {
	h.forEachSession(func(s *session) {
		if s.correctWord != nil && errors.Is(s.correctWord.SetWords(words), game.ErrNoWords) {
			s.correctWord = nil
		}
		if s.hangman != nil && errors.Is(s.hangman.SetWords(words), game.ErrNoWords) {
			s.hangman = nil
		}
		if s.anagram != nil && errors.Is(s.anagram.SetWords(words), game.ErrNoWords) {
			s.anagram = nil
		}
	})
	h.logger.Debug("Games synced with words", zap.Int("count", len(words)))
}
