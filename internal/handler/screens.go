package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"multilingual/internal/domain"
	"multilingual/internal/game"
	"multilingual/internal/navigation"
	"multilingual/internal/worker"

	"go.uber.org/zap"
)

// onText applies a text message to the chat's current screen
func (h *Handler) onText(chatID int64, raw string) screen {
	s := h.getSession(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.TrimSpace(raw)
	notice := ""

	switch s.state.State {
	case domain.StateWaitingNativeLang:
		if text == "" {
			notice = msgEmptyLanguages
			break
		}
		s.state = domain.StateData{State: domain.StateWaitingForeignLang, FirstInput: text}

	case domain.StateWaitingForeignLang:
		notice = h.setupLanguages(s, s.state.FirstInput, text)

	case domain.StateWaitingNativeWord:
		if text == "" {
			notice = msgEmptyWords
			break
		}
		s.state = domain.StateData{State: domain.StateWaitingForeignWord, FirstInput: text}

	case domain.StateWaitingForeignWord:
		notice = h.addWords(chatID, s, s.state.FirstInput, text)

	case domain.StateWaitingNewNative:
		if text == "" {
			notice = msgEmptyLanguages
			break
		}
		s.state = domain.StateData{State: domain.StateWaitingNewForeign, FirstInput: text}

	case domain.StateWaitingNewForeign:
		if text == "" {
			notice = msgEmptyLanguages
			break
		}
		s.state = domain.StateData{
			State:       domain.StateConfirmingChange,
			FirstInput:  s.state.FirstInput,
			SecondInput: text,
		}

	case domain.StatePlayingCorrectWord:
		if s.correctWord != nil {
			s.correctWord.Check(raw)
		}

	case domain.StatePlayingHangman:
		notice = h.guessLetter(s, text)

	case domain.StatePlayingAnagram:
		if s.anagram != nil {
			s.anagram.Check(raw)
		}
	}

	return h.render(s, notice)
}

// onButton applies an inline button press to the chat's current screen
func (h *Handler) onButton(chatID int64, unique, data string) screen {
	s := h.getSession(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	notice := ""

	switch unique {
	case btnNavigate.Unique:
		if err := s.nav.Navigate(navigation.Route(data)); err != nil {
			h.logger.Warn("Navigation failed", zap.Int64("chat_id", chatID), zap.Error(err))
			notice = msgUnknownAction
			break
		}
		notice = h.enter(s)

	case btnBack.Unique:
		if s.nav.Back() {
			notice = h.enter(s)
		}

	case btnClear.Unique:
		h.resetInput(s)

	case btnNext.Unique:
		h.nextRound(s)

	case btnConfirm.Unique:
		notice = h.confirmChange(chatID, s)

	case btnCancel.Unique:
		h.resetInput(s)
		notice = msgChangeCancelled

	case btnDeleteWord.Unique:
		notice = h.deleteWord(chatID, data)

	case btnPage.Unique:
		page, err := strconv.Atoi(cleanCallbackData(data))
		if err != nil {
			notice = msgUnknownAction
			break
		}
		s.vocabPage = page

	default:
		notice = msgUnknownAction
	}

	return h.render(s, notice)
}

// start resets the chat and shows its start screen
func (h *Handler) start(chatID int64) screen {
	h.resetSession(chatID)
	s := h.getSession(chatID)
	s.mu.Lock()
	defer s.mu.Unlock()

	return h.render(s, h.enter(s))
}

// enter prepares the state of the route just navigated to. It returns a
// notice when the route cannot be shown.
func (h *Handler) enter(s *session) string {
	s.correctWord, s.hangman, s.anagram = nil, nil, nil
	s.vocabPage = 0
	h.resetInput(s)

	switch s.nav.Current() {
	case navigation.CorrectWordGame, navigation.HangmanGame, navigation.AnagramGame:
		if err := h.startGame(s); err != nil {
			s.nav.Back()
			h.resetInput(s)
			return msgNoWordsToPlay
		}
	}
	return ""
}

func (h *Handler) goHome(s *session) {
	_ = s.nav.Navigate(navigation.Home)
	h.enter(s)
}

// resetInput clears any half-typed input of the current route
func (h *Handler) resetInput(s *session) {
	state := domain.StateIdle
	switch s.nav.Current() {
	case navigation.Opening:
		state = domain.StateWaitingNativeLang
	case navigation.Home:
		state = domain.StateWaitingNativeWord
	case navigation.LanguageChange:
		state = domain.StateWaitingNewNative
	case navigation.CorrectWordGame:
		state = domain.StatePlayingCorrectWord
	case navigation.HangmanGame:
		state = domain.StatePlayingHangman
	case navigation.AnagramGame:
		state = domain.StatePlayingAnagram
	}
	s.state = domain.StateData{State: state}
}

func (h *Handler) startGame(s *session) error {
	words := h.wordService.Words().Snapshot()
	rng := h.newRand()

	var err error
	switch s.nav.Current() {
	case navigation.CorrectWordGame:
		s.correctWord, err = game.NewCorrectWord(words, rng)
	case navigation.HangmanGame:
		s.hangman, err = game.NewHangman(words, h.gameCfg.HangmanMaxMistakes, rng)
	case navigation.AnagramGame:
		s.anagram, err = game.NewAnagram(words, rng)
	}
	return err
}

func (h *Handler) nextRound(s *session) {
	switch {
	case s.correctWord != nil:
		s.correctWord.Next()
	case s.hangman != nil:
		s.hangman.Next()
	case s.anagram != nil:
		s.anagram.Next()
	}
}

func (h *Handler) guessLetter(s *session, text string) string {
	if s.hangman == nil {
		return ""
	}
	letters := []rune(text)
	if len(letters) != 1 {
		return msgSingleLetter
	}

	_, err := s.hangman.Guess(letters[0])
	switch {
	case errors.Is(err, game.ErrAlreadyGuessed):
		return msgAlreadyGuessed
	case errors.Is(err, game.ErrInvalidGuess):
		return msgSingleLetter
	case errors.Is(err, game.ErrGameOver):
		return msgRoundOver
	}
	return ""
}

func (h *Handler) setupLanguages(s *session, native, foreign string) string {
	err := h.wait(h.languageService.Setup(native, foreign))
	switch {
	case err == nil:
		h.goHome(s)
		return msgLanguagesSaved
	case errors.Is(err, domain.ErrAlreadyConfigured):
		h.goHome(s)
		return ""
	case errors.Is(err, domain.ErrEmptyField):
		return msgEmptyLanguages
	default:
		h.logger.Error("Failed to save languages", zap.Error(err))
		return msgStorageDown
	}
}

func (h *Handler) addWords(chatID int64, s *session, native, foreign string) string {
	err := h.wait(h.wordService.Add(native, foreign))
	switch {
	case err == nil:
		s.state = domain.StateData{State: domain.StateWaitingNativeWord}
		return msgWordsAdded
	case errors.Is(err, domain.ErrEmptyField):
		return msgEmptyWords
	default:
		h.logger.Error("Failed to save word pair",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return msgStorageDown
	}
}

func (h *Handler) deleteWord(chatID int64, data string) string {
	id, err := strconv.ParseInt(cleanCallbackData(data), 10, 64)
	if err != nil {
		return msgUnknownAction
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	word, err := h.wordService.Get(ctx, id)
	if err == nil {
		err = h.wait(h.wordService.Delete(id))
	}

	switch {
	case err == nil:
		return fmt.Sprintf(msgWordsDeleted, word.Native, word.Foreign)
	case errors.Is(err, domain.ErrNotFound):
		return msgWordGone
	default:
		h.logger.Error("Failed to delete word",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.Int64("word_id", id),
		)
		return msgStorageDown
	}
}

// confirmChange walks the two step confirmation and applies the change
func (h *Handler) confirmChange(chatID int64, s *session) string {
	if s.state.State == domain.StateConfirmingChange {
		s.state.State = domain.StateReconfirmingChange
		return ""
	}
	if s.state.State != domain.StateReconfirmingChange {
		return ""
	}

	err := h.wait(h.languageService.Change(s.state.FirstInput, s.state.SecondInput))
	switch {
	case err == nil:
		h.goHome(s)
		return msgLanguagesChanged
	case errors.Is(err, domain.ErrEmptyField):
		h.resetInput(s)
		return msgEmptyLanguages
	default:
		h.logger.Error("Failed to change languages",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		h.resetInput(s)
		return msgStorageDown
	}
}

// wait blocks until the queued mutation has been applied
func (h *Handler) wait(f *worker.Future) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	return f.Wait(ctx)
}

// render draws the current route
func (h *Handler) render(s *session, notice string) screen {
	pair, _ := h.languageService.Active()
	route := s.nav.Current()

	var sc screen
	switch route {
	case navigation.Opening:
		sc = renderOpening(s.state)
	case navigation.Home:
		sc = renderHome(pair, s.state)
	case navigation.VocabList:
		words := h.wordService.Sorted()
		// A delete may have emptied the last page
		s.vocabPage = clampPage(s.vocabPage, len(words))
		sc = renderVocab(pair, words, s.vocabPage)
	case navigation.CorrectWordGame:
		if s.correctWord != nil {
			sc = renderCorrectWord(s.correctWord)
		}
	case navigation.HangmanGame:
		if s.hangman != nil {
			sc = renderHangman(s.hangman)
		}
	case navigation.AnagramGame:
		if s.anagram != nil {
			sc = renderAnagram(s.anagram)
		}
	case navigation.LanguageChange:
		sc = renderLanguageChange(pair, s.state)
	}

	// The word list emptied under a running game
	if sc.text == "" {
		sc.text = msgNoWordsToPlay
	}

	inDialog := s.state.State == domain.StateConfirmingChange || s.state.State == domain.StateReconfirmingChange
	if route != navigation.Opening && !inDialog {
		sc.rows = append(sc.rows, menuRows(route, s.nav.Depth() > 1)...)
	}
	sc.notice = notice
	return sc
}
