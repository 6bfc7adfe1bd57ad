package handler

// User facing texts
const (
	msgEmptyWords       = "If the input words are empty, they won't be added."
	msgWordsAdded       = "The words have been added"
	msgWordsDeleted     = "The words %s and %s have been deleted."
	msgEmptyLanguages   = "If the input languages are empty, the operation won't proceed."
	msgStorageDown      = "Storage is unavailable, please try again later."
	msgWordGone         = "That word no longer exists."
	msgNoWordsToPlay    = "Add some words first to play."
	msgLanguagesSaved   = "Languages saved"
	msgLanguagesChanged = "Languages changed, the vocabulary is empty now"
	msgChangeCancelled  = "Nothing was changed"
	msgSingleLetter     = "Send a single letter."
	msgAlreadyGuessed   = "You already tried that letter."
	msgRoundOver        = "This round is over, press Next."
	msgUnknownAction    = "Unknown action"

	msgOpeningNative  = "Welcome!\n\nWhich language do you speak? Send your native language."
	msgOpeningForeign = "Native language: %s\n\nWhich language do you want to learn? Send the foreign language."

	msgHomeNative  = "%s → %s\n\nSend a word in %s."
	msgHomeForeign = "%s → %s\n\n%s: %s\nNow send its translation in %s."

	msgVocabHeader = "Vocabulary %s → %s"
	msgVocabEmpty  = "No words yet. Add some on the home screen."
	msgVocabPage   = "Page %d of %d"

	msgCorrectWordPrompt = "Correct word\n\nWhat is the translation of: %s"
	msgGuessRight        = "The word guessed is right"
	msgGuessWrong        = "The word guessed is wrong"

	msgHangmanPrompt = "Hangman\n\nHint: %s\n\n%s\n\nMistakes left: %d"
	msgHangmanTried  = "Tried: %s"
	msgHangmanWon    = "You won! The word was %s."
	msgHangmanLost   = "Out of guesses. The word was %s."

	msgAnagramPrompt = "Anagram\n\nUnscramble: %s\nHint: %s"

	msgChangeCurrent   = "Current native language: %s\nCurrent foreign language: %s"
	msgChangeNative    = "Send the new native language."
	msgChangeForeign   = "New native language: %s\n\nSend the new foreign language."
	msgChangeConfirm   = "Change to %s → %s?\n\nEvery saved word will be deleted."
	msgChangeReconfirm = "Are you sure? This cannot be undone."
)
