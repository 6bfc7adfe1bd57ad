package service

import (
	"context"
	"testing"
	"time"

	"multilingual/internal/domain"
	"multilingual/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*WordService, *LanguageService, *testutil.MockWordRepository, *testutil.MockLanguageRepository) {
	wordRepo := new(testutil.MockWordRepository)
	languageRepo := new(testutil.MockLanguageRepository)
	queue := newTestQueue(t)
	logger := testutil.NewTestLogger()

	words := NewWordService(wordRepo, queue, logger)
	languages := NewLanguageService(languageRepo, words, queue, logger)
	return words, languages, wordRepo, languageRepo
}

func TestLanguageService_Setup(t *testing.T) {
	tests := []struct {
		name          string
		native        string
		foreign       string
		active        *domain.LanguagePair
		expectedError error
	}{
		{
			name:    "first pair",
			native:  "English",
			foreign: "Spanish",
		},
		{
			name:          "empty foreign",
			native:        "English",
			foreign:       " ",
			expectedError: domain.ErrEmptyField,
		},
		{
			name:          "already configured",
			native:        "English",
			foreign:       "German",
			active:        &domain.LanguagePair{ID: 1, Native: "English", Foreign: "Spanish"},
			expectedError: domain.ErrAlreadyConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, languages, _, languageRepo := newTestServices(t)

			if tt.native != "" && tt.foreign != " " {
				languageRepo.On("Active", mock.Anything).Return(tt.active, nil)
			}
			if tt.expectedError == nil {
				created := testutil.NewTestLanguagePair(1, tt.native, tt.foreign)
				languageRepo.On("Create", mock.Anything, domain.LanguagePair{Native: tt.native, Foreign: tt.foreign}).
					Return(created, nil)
				languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{created}, nil)
			}

			assert.False(t, languages.IsConfigured())

			err := wait(t, languages.Setup(tt.native, tt.foreign))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.False(t, languages.IsConfigured())
				languageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.True(t, languages.IsConfigured())
				active, ok := languages.Active()
				assert.True(t, ok)
				assert.Equal(t, tt.foreign, active.Foreign)
			}
			languageRepo.AssertExpectations(t)
		})
	}
}

func TestLanguageService_Change(t *testing.T) {
	words, languages, wordRepo, languageRepo := newTestServices(t)

	words.Words().Publish(testutil.NewTestWords([2]string{"rain", "lluvia"}, [2]string{"water", "agua"}))
	languages.Languages().Publish([]domain.LanguagePair{testutil.NewTestLanguagePair(1, "English", "Spanish")})

	switched := testutil.NewTestLanguagePair(1, "Welsh", "French")
	languageRepo.On("Switch", mock.Anything, domain.LanguagePair{Native: "Welsh", Foreign: "French"}).
		Return(switched, nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{switched}, nil)
	wordRepo.On("List", mock.Anything).Return([]domain.Word{}, nil)

	require.NoError(t, wait(t, languages.Change("Welsh", "French")))

	assert.Equal(t, 1, languages.Languages().Len())
	assert.Equal(t, 0, words.Words().Len())

	active, ok := languages.Active()
	require.True(t, ok)
	assert.Equal(t, switched, active)

	languageRepo.AssertExpectations(t)
	wordRepo.AssertExpectations(t)
}

func TestLanguageService_ChangeNeverShowsNewPairWithOldWords(t *testing.T) {
	words, languages, wordRepo, languageRepo := newTestServices(t)

	oldWords := testutil.NewTestWords([2]string{"rain", "lluvia"})
	english := testutil.NewTestLanguagePair(1, "English", "Spanish")
	words.Words().Publish(oldWords)
	languages.Languages().Publish([]domain.LanguagePair{english})

	switched := testutil.NewTestLanguagePair(1, "Welsh", "French")
	entered := make(chan struct{})
	release := make(chan time.Time)

	languageRepo.On("Switch", mock.Anything, mock.Anything).Return(switched, nil)
	languageRepo.On("List", mock.Anything).
		Run(func(mock.Arguments) { close(entered) }).
		Return([]domain.LanguagePair{switched}, nil)
	wordRepo.On("List", mock.Anything).
		WaitUntil(release).
		Return([]domain.Word{}, nil)

	future := languages.Change("Welsh", "French")

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("languages were never re-read")
	}

	// Both tables are read before anything is published
	active, _ := languages.Active()
	assert.Equal(t, english, active)
	assert.Equal(t, oldWords, words.Words().Snapshot())

	close(release)
	require.NoError(t, wait(t, future))

	active, _ = languages.Active()
	assert.Equal(t, switched, active)
	assert.Empty(t, words.Words().Snapshot())
}

func TestLanguageService_ChangeRefreshFailureAfterCommit(t *testing.T) {
	words, languages, wordRepo, languageRepo := newTestServices(t)
	english := testutil.NewTestLanguagePair(1, "English", "Spanish")
	languages.Languages().Publish([]domain.LanguagePair{english})
	words.Words().Publish(testutil.NewTestWords([2]string{"rain", "lluvia"}))

	languageRepo.On("Switch", mock.Anything, mock.Anything).
		Return(testutil.NewTestLanguagePair(1, "Welsh", "French"), nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{}, nil)
	wordRepo.On("List", mock.Anything).Return(nil, domain.ErrStorageUnavailable)

	// The switch committed, so the change reports success
	require.NoError(t, wait(t, languages.Change("Welsh", "French")))

	// Neither collection moved on its own
	active, _ := languages.Active()
	assert.Equal(t, english, active)
	assert.Equal(t, 1, words.Words().Len())
}

func TestLanguageService_ChangeRejected(t *testing.T) {
	tests := []struct {
		name    string
		native  string
		foreign string
		err     error
		valid   bool
	}{
		{name: "empty native", native: "", foreign: "French"},
		{name: "empty both", native: "", foreign: ""},
		{name: "storage down", native: "Welsh", foreign: "French", err: domain.ErrStorageUnavailable, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, languages, wordRepo, languageRepo := newTestServices(t)
			existing := testutil.NewTestLanguagePair(1, "English", "Spanish")
			languages.Languages().Publish([]domain.LanguagePair{existing})
			words.Words().Publish(testutil.NewTestWords([2]string{"rain", "lluvia"}))

			if tt.valid {
				languageRepo.On("Switch", mock.Anything, mock.Anything).Return(domain.LanguagePair{}, tt.err)
			}

			err := wait(t, languages.Change(tt.native, tt.foreign))

			if tt.valid {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.ErrorIs(t, err, domain.ErrEmptyField)
				languageRepo.AssertNotCalled(t, "Switch", mock.Anything, mock.Anything)
			}

			// Nothing changed
			active, _ := languages.Active()
			assert.Equal(t, existing, active)
			assert.Equal(t, 1, words.Words().Len())
			wordRepo.AssertNotCalled(t, "List", mock.Anything)
		})
	}
}

func TestLanguageService_UpdateAndDelete(t *testing.T) {
	_, languages, _, languageRepo := newTestServices(t)
	pair := testutil.NewTestLanguagePair(1, "English", "Italian")

	languageRepo.On("Update", mock.Anything, pair).Return(nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{pair}, nil).Once()
	languageRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{}, nil).Once()
	languageRepo.On("DeleteAll", mock.Anything).Return(nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{}, nil).Once()

	require.NoError(t, wait(t, languages.Update(pair)))
	assert.True(t, languages.IsConfigured())

	require.NoError(t, wait(t, languages.Delete(1)))
	assert.False(t, languages.IsConfigured())

	require.NoError(t, wait(t, languages.DeleteAll()))

	err := wait(t, languages.Update(domain.LanguagePair{ID: 1, Native: "English"}))
	assert.ErrorIs(t, err, domain.ErrEmptyField)

	languageRepo.AssertExpectations(t)
}

func TestLanguageService_Queries(t *testing.T) {
	ctx := context.Background()
	_, languages, _, languageRepo := newTestServices(t)
	pair := testutil.NewTestLanguagePair(2, "English", "Spanish")

	languageRepo.On("GetByID", mock.Anything, int64(2)).Return(&pair, nil)
	languageRepo.On("FindByNative", mock.Anything, "English").Return([]domain.LanguagePair{pair}, nil)
	languageRepo.On("FindByForeign", mock.Anything, "Spanish").Return([]domain.LanguagePair{pair}, nil)
	languageRepo.On("List", mock.Anything).Return([]domain.LanguagePair{pair}, nil)

	require.NoError(t, languages.Load(ctx))
	assert.True(t, languages.IsConfigured())

	got, err := languages.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, pair, *got)

	byNative, err := languages.FindByNative(ctx, "English")
	require.NoError(t, err)
	assert.Equal(t, []domain.LanguagePair{pair}, byNative)

	byForeign, err := languages.FindByForeign(ctx, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, []domain.LanguagePair{pair}, byForeign)
}
