package handler

import (
	"math/rand"
	"sync"
	"time"

	"multilingual/internal/config"
	"multilingual/internal/domain"
	"multilingual/internal/game"
	"multilingual/internal/navigation"
	"multilingual/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	wordService     *service.WordService
	languageService *service.LanguageService
	gameCfg         config.GameConfig
	logger          *zap.Logger

	// How long a chat waits for its mutation to be applied
	timeout time.Duration
	newRand func() *rand.Rand

	// Chat sessions (in-memory state machine)
	sessions   map[int64]*session
	sessionMux sync.RWMutex
}

// session is the conversation state of one chat
type session struct {
	mu    sync.Mutex
	state domain.StateData
	nav   *navigation.Navigator

	// Zero based page of the vocabulary list
	vocabPage int

	correctWord *game.CorrectWord
	hangman     *game.Hangman
	anagram     *game.Anagram
}

// NewHandler creates a new handler instance
func NewHandler(
	wordService *service.WordService,
	languageService *service.LanguageService,
	gameCfg config.GameConfig,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		wordService:     wordService,
		languageService: languageService,
		gameCfg:         gameCfg,
		logger:          logger,
		timeout:         10 * time.Second,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		sessions: make(map[int64]*session),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers(bot *tele.Bot) {
	// Commands
	bot.Handle("/start", h.handleStart)

	// Text messages
	bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	for _, btn := range []*tele.Btn{
		&btnNavigate, &btnBack, &btnClear, &btnNext,
		&btnConfirm, &btnCancel, &btnDeleteWord, &btnPage,
	} {
		bot.Handle(btn, h.handleCallback)
	}

	// Buttons from older messages whose endpoint is gone
	bot.Handle(tele.OnCallback, h.handleCallback)
}

// getSession returns the chat's session, creating it on first contact
func (h *Handler) getSession(chatID int64) *session {
	h.sessionMux.RLock()
	s, exists := h.sessions[chatID]
	h.sessionMux.RUnlock()
	if exists {
		return s
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	if s, exists = h.sessions[chatID]; exists {
		return s
	}
	s = &session{nav: navigation.NewNavigator(h.languageService.IsConfigured())}
	h.resetInput(s)
	h.sessions[chatID] = s
	return s
}

// resetSession drops the chat's session so the next contact starts over
func (h *Handler) resetSession(chatID int64) {
	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()
	delete(h.sessions, chatID)
}

// forEachSession calls fn on every open session with its lock held
func (h *Handler) forEachSession(fn func(s *session)) {
	h.sessionMux.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.sessionMux.RUnlock()

	for _, s := range sessions {
		s.mu.Lock()
		fn(s)
		s.mu.Unlock()
	}
}

// Inline keyboard buttons
var (
	btnNavigate = tele.Btn{
		Unique: "nav",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "◀️ Back",
	}
	btnClear = tele.Btn{
		Unique: "clear",
		Text:   "🧹 Clear",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️ Next",
	}
	btnConfirm = tele.Btn{
		Unique: "confirm",
		Text:   "✅ Confirm",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnDeleteWord = tele.Btn{
		Unique: "delete_word",
	}
	btnPage = tele.Btn{
		Unique: "page",
	}
)
