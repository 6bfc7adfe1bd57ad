package domain

// ChatState represents what the chat is waiting for next
type ChatState string

const (
	StateIdle               ChatState = "idle"
	StateWaitingNativeLang  ChatState = "waiting_native_language"
	StateWaitingForeignLang ChatState = "waiting_foreign_language"
	StateWaitingNativeWord  ChatState = "waiting_native_word"
	StateWaitingForeignWord ChatState = "waiting_foreign_word"
	StateWaitingNewNative   ChatState = "waiting_new_native_language"
	StateWaitingNewForeign  ChatState = "waiting_new_foreign_language"
	StateConfirmingChange   ChatState = "confirming_language_change"
	StateReconfirmingChange ChatState = "reconfirming_language_change"
	StatePlayingCorrectWord ChatState = "playing_correct_word"
	StatePlayingHangman     ChatState = "playing_hangman"
	StatePlayingAnagram     ChatState = "playing_anagram"
)

// StateData holds the transient input of the chat's current screen
type StateData struct {
	State       ChatState
	FirstInput  string
	SecondInput string
}
