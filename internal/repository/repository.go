package repository

import (
	"context"

	"multilingual/internal/domain"
)

// WordRepository defines word data operations against words_table
type WordRepository interface {
	Create(ctx context.Context, word domain.Word) (domain.Word, error)
	CreateBatch(ctx context.Context, words []domain.Word) error
	Update(ctx context.Context, word domain.Word) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]domain.Word, error)
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	FindByNative(ctx context.Context, native string) ([]domain.Word, error)
	FindByForeign(ctx context.Context, foreign string) ([]domain.Word, error)
	FindByPair(ctx context.Context, native, foreign string) ([]domain.Word, error)
}

// LanguageRepository defines language pair data operations against languages
type LanguageRepository interface {
	Create(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error)
	CreateBatch(ctx context.Context, pairs []domain.LanguagePair) error
	Update(ctx context.Context, pair domain.LanguagePair) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]domain.LanguagePair, error)
	GetByID(ctx context.Context, id int64) (*domain.LanguagePair, error)
	FindByNative(ctx context.Context, native string) ([]domain.LanguagePair, error)
	FindByForeign(ctx context.Context, foreign string) ([]domain.LanguagePair, error)

	// Active returns the last pair in insertion order, nil if none exists
	Active(ctx context.Context) (*domain.LanguagePair, error)

	// Switch makes pair the only language row and clears every word, atomically
	Switch(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error)
}
