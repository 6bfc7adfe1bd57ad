package testutil

import (
	"context"

	"multilingual/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Create(ctx context.Context, word domain.Word) (domain.Word, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(domain.Word), args.Error(1)
}

func (m *MockWordRepository) CreateBatch(ctx context.Context, words []domain.Word) error {
	args := m.Called(ctx, words)
	return args.Error(0)
}

func (m *MockWordRepository) Update(ctx context.Context, word domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWordRepository) List(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByNative(ctx context.Context, native string) ([]domain.Word, error) {
	args := m.Called(ctx, native)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByForeign(ctx context.Context, foreign string) ([]domain.Word, error) {
	args := m.Called(ctx, foreign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) FindByPair(ctx context.Context, native, foreign string) ([]domain.Word, error) {
	args := m.Called(ctx, native, foreign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockLanguageRepository is a mock for LanguageRepository
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) Create(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) CreateBatch(ctx context.Context, pairs []domain.LanguagePair) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

func (m *MockLanguageRepository) Update(ctx context.Context, pair domain.LanguagePair) error {
	args := m.Called(ctx, pair)
	return args.Error(0)
}

func (m *MockLanguageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLanguageRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLanguageRepository) List(ctx context.Context) ([]domain.LanguagePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) GetByID(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) FindByNative(ctx context.Context, native string) ([]domain.LanguagePair, error) {
	args := m.Called(ctx, native)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) FindByForeign(ctx context.Context, foreign string) ([]domain.LanguagePair, error) {
	args := m.Called(ctx, foreign)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) Active(ctx context.Context) (*domain.LanguagePair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LanguagePair), args.Error(1)
}

func (m *MockLanguageRepository) Switch(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.LanguagePair), args.Error(1)
}
