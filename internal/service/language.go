package service

import (
	"context"
	"fmt"

	"multilingual/internal/domain"
	"multilingual/internal/observe"
	"multilingual/internal/repository"
	"multilingual/internal/worker"

	"go.uber.org/zap"
)

// LanguageService holds the observable language pair collection
type LanguageService struct {
	languageRepo repository.LanguageRepository
	words        *WordService
	queue        *worker.Queue
	feed         *observe.Feed[domain.LanguagePair]
	logger       *zap.Logger
}

// NewLanguageService creates a new language service. words is refreshed
// after a language change since the change clears the word table.
func NewLanguageService(
	languageRepo repository.LanguageRepository,
	words *WordService,
	queue *worker.Queue,
	logger *zap.Logger,
) *LanguageService {
	return &LanguageService{
		languageRepo: languageRepo,
		words:        words,
		queue:        queue,
		feed:         observe.NewFeed[domain.LanguagePair](),
		logger:       logger,
	}
}

// Languages returns the live language pair collection
func (s *LanguageService) Languages() *observe.Feed[domain.LanguagePair] {
	return s.feed
}

// Load reads the table once at startup and primes the collection
func (s *LanguageService) Load(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("load languages: %w", err)
	}
	s.logger.Info("Languages loaded", zap.Int("count", s.feed.Len()))
	return nil
}

// Refresh re-reads the table and publishes the result
func (s *LanguageService) Refresh(ctx context.Context) error {
	pairs, err := s.languageRepo.List(ctx)
	if err != nil {
		return err
	}
	s.feed.Publish(pairs)
	return nil
}

// refreshCommitted re-reads the table after a committed mutation. A failed
// read only leaves the collection stale, the mutation itself succeeded.
func (s *LanguageService) refreshCommitted(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Failed to refresh after commit", zap.Error(err))
	}
}

// Active returns the pair currently in effect
func (s *LanguageService) Active() (domain.LanguagePair, bool) {
	return domain.Latest(s.feed.Snapshot())
}

// IsConfigured reports whether first-time setup has been completed
func (s *LanguageService) IsConfigured() bool {
	return s.feed.Len() > 0
}

// Setup stores the first language pair
func (s *LanguageService) Setup(native, foreign string) *worker.Future {
	pair, err := domain.NewLanguagePair(native, foreign)
	if err != nil {
		return worker.Resolved(err)
	}

	return s.queue.Submit("setup_languages", func(ctx context.Context) error {
		active, err := s.languageRepo.Active(ctx)
		if err != nil {
			return fmt.Errorf("setup languages: %w", err)
		}
		if active != nil {
			return domain.ErrAlreadyConfigured
		}

		created, err := s.languageRepo.Create(ctx, pair)
		if err != nil {
			return fmt.Errorf("setup languages: %w", err)
		}
		s.logger.Info("Language pair configured",
			zap.Int64("language_id", created.ID),
			zap.String("native", created.Native),
			zap.String("foreign", created.Foreign),
		)
		s.refreshCommitted(ctx)
		return nil
	})
}

// Change replaces the active pair and clears every word as one step
func (s *LanguageService) Change(native, foreign string) *worker.Future {
	pair, err := domain.NewLanguagePair(native, foreign)
	if err != nil {
		return worker.Resolved(err)
	}

	return s.queue.Submit("change_languages", func(ctx context.Context) error {
		switched, err := s.languageRepo.Switch(ctx, pair)
		if err != nil {
			return fmt.Errorf("change languages: %w", err)
		}
		s.logger.Info("Language pair changed, words cleared",
			zap.Int64("language_id", switched.ID),
			zap.String("native", switched.Native),
			zap.String("foreign", switched.Foreign),
		)

		s.publishSwitched(ctx)
		return nil
	})
}

// publishSwitched reads both tables before publishing either, then publishes
// words ahead of languages. Observers can see an empty vocabulary under the
// old pair but never the new pair next to the old words.
func (s *LanguageService) publishSwitched(ctx context.Context) {
	pairs, err := s.languageRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh languages after change", zap.Error(err))
		return
	}
	words, err := s.words.wordRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh words after change", zap.Error(err))
		return
	}

	s.words.feed.Publish(words)
	s.feed.Publish(pairs)
}

// Update replaces the names of an existing pair
func (s *LanguageService) Update(pair domain.LanguagePair) *worker.Future {
	if err := pair.Validate(); err != nil {
		return worker.Resolved(err)
	}

	return s.queue.Submit("update_languages", func(ctx context.Context) error {
		if err := s.languageRepo.Update(ctx, pair); err != nil {
			return fmt.Errorf("update languages %d: %w", pair.ID, err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// Delete removes a single pair
func (s *LanguageService) Delete(id int64) *worker.Future {
	return s.queue.Submit("delete_languages", func(ctx context.Context) error {
		if err := s.languageRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete languages %d: %w", id, err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// DeleteAll removes every pair
func (s *LanguageService) DeleteAll() *worker.Future {
	return s.queue.Submit("delete_all_languages", func(ctx context.Context) error {
		if err := s.languageRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete all languages: %w", err)
		}
		s.refreshCommitted(ctx)
		return nil
	})
}

// Get returns the pair with the given id
func (s *LanguageService) Get(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	return s.languageRepo.GetByID(ctx, id)
}

// FindByNative returns the pairs with exactly this native language
func (s *LanguageService) FindByNative(ctx context.Context, native string) ([]domain.LanguagePair, error) {
	return s.languageRepo.FindByNative(ctx, native)
}

// FindByForeign returns the pairs with exactly this foreign language
func (s *LanguageService) FindByForeign(ctx context.Context, foreign string) ([]domain.LanguagePair, error) {
	return s.languageRepo.FindByForeign(ctx, foreign)
}
