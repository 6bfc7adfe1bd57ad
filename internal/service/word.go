package service

import (
	"context"
	"fmt"
	"slices"

	"multilingual/internal/domain"
	"multilingual/internal/observe"
	"multilingual/internal/repository"
	"multilingual/internal/worker"

	"go.uber.org/zap"
)

// WordService holds the observable word collection and applies word
// mutations on the background queue
type WordService struct {
	wordRepo repository.WordRepository
	queue    *worker.Queue
	feed     *observe.Feed[domain.Word]
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, queue *worker.Queue, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		queue:    queue,
		feed:     observe.NewFeed[domain.Word](),
		logger:   logger,
	}
}

// Words returns the live word collection
func (s *WordService) Words() *observe.Feed[domain.Word] {
	return s.feed
}

// Load reads the table once at startup and primes the collection
func (s *WordService) Load(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	s.logger.Info("Words loaded", zap.Int("count", s.feed.Len()))
	return nil
}

// Refresh re-reads the table and publishes the result
func (s *WordService) Refresh(ctx context.Context) error {
	words, err := s.wordRepo.List(ctx)
	if err != nil {
		return err
	}
	s.feed.Publish(words)
	return nil
}

// refreshCommitted re-reads the table after a committed mutation. A failed
// read only leaves the collection stale, the mutation itself succeeded.
func (s *WordService) refreshCommitted(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Failed to refresh after commit", zap.Error(err))
	}
}

// Sorted returns the current words ordered by native term
func (s *WordService) Sorted() []domain.Word {
	words := s.feed.Snapshot()
	slices.SortFunc(words, domain.ByNative)
	return words
}

// Add saves a new word pair. Empty terms are rejected without touching storage.
func (s *WordService) Add(native, foreign string) *worker.Future {
	word, err := domain.NewWord(native, foreign)
	if err != nil {
		return worker.Resolved(err)
	}

	return s.queue.Submit("add_word", func(ctx context.Context) error {
		created, err := s.wordRepo.Create(ctx, word)
		if err != nil {
			return fmt.Errorf("add word: %w", err)
		}
		s.logger.Info("Word pair saved",
			zap.Int64("word_id", created.ID),
			zap.String("native", created.Native),
			zap.String("foreign", created.Foreign),
		)
		s.refreshCommitted(ctx)
		return nil
	})
}

// AddBatch saves several word pairs at once
func (s *WordService) AddBatch(words []domain.Word) *worker.Future {
	for _, w := range words {
		if err := w.Validate(); err != nil {
			return worker.Resolved(err)
		}
	}

	return s.queue.Submit("add_words", func(ctx context.Context) error {
		if err := s.wordRepo.CreateBatch(ctx, words); err != nil {
			return fmt.Errorf("add words: %w", err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// Update replaces the terms of an existing word
func (s *WordService) Update(word domain.Word) *worker.Future {
	if err := word.Validate(); err != nil {
		return worker.Resolved(err)
	}

	return s.queue.Submit("update_word", func(ctx context.Context) error {
		if err := s.wordRepo.Update(ctx, word); err != nil {
			return fmt.Errorf("update word %d: %w", word.ID, err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// Delete removes a single word
func (s *WordService) Delete(id int64) *worker.Future {
	return s.queue.Submit("delete_word", func(ctx context.Context) error {
		if err := s.wordRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete word %d: %w", id, err)
		}
		s.logger.Info("Word pair deleted", zap.Int64("word_id", id))
		s.refreshCommitted(ctx)
		return nil
	})
}

// DeleteAll removes every word
func (s *WordService) DeleteAll() *worker.Future {
	return s.queue.Submit("delete_all_words", func(ctx context.Context) error {
		if err := s.wordRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete all words: %w", err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// Get returns the word with the given id
func (s *WordService) Get(ctx context.Context, id int64) (*domain.Word, error) {
	return s.wordRepo.GetByID(ctx, id)
}

// FindByNative returns the words with exactly this native term
func (s *WordService) FindByNative(ctx context.Context, native string) ([]domain.Word, error) {
	return s.wordRepo.FindByNative(ctx, native)
}

// FindByForeign returns the words with exactly this foreign term
func (s *WordService) FindByForeign(ctx context.Context, foreign string) ([]domain.Word, error) {
	return s.wordRepo.FindByForeign(ctx, foreign)
}

// FindPair returns the words matching both terms
func (s *WordService) FindPair(ctx context.Context, native, foreign string) ([]domain.Word, error) {
	return s.wordRepo.FindByPair(ctx, native, foreign)
}
