package handler

import (
	"fmt"
	"strconv"
	"strings"

	"multilingual/internal/domain"
	"multilingual/internal/game"
	"multilingual/internal/navigation"

	tele "gopkg.in/telebot.v3"
)

// screen is one rendered message plus an optional transient notice
type screen struct {
	text   string
	rows   []tele.Row
	notice string
}

// markup builds the inline keyboard, nil when the screen has no buttons
func (s screen) markup() *tele.ReplyMarkup {
	if len(s.rows) == 0 {
		return nil
	}
	markup := &tele.ReplyMarkup{}
	markup.Inline(s.rows...)
	return markup
}

var routeIcons = map[navigation.Route]string{
	navigation.Home:            "🏠",
	navigation.VocabList:       "📚",
	navigation.CorrectWordGame: "✏️",
	navigation.HangmanGame:     "🪢",
	navigation.AnagramGame:     "🔀",
	navigation.LanguageChange:  "🌐",
}

func navButton(route navigation.Route) tele.Btn {
	markup := &tele.ReplyMarkup{}
	return markup.Data(routeIcons[route]+" "+route.Title(), btnNavigate.Unique, string(route))
}

// menuRows returns the side menu and the bottom bar, without the current route
func menuRows(current navigation.Route, canGoBack bool) []tele.Row {
	var rows []tele.Row

	var drawer tele.Row
	for _, route := range navigation.Drawer() {
		if route == current {
			continue
		}
		drawer = append(drawer, navButton(route))
		if len(drawer) == 2 {
			rows = append(rows, drawer)
			drawer = nil
		}
	}
	if len(drawer) > 0 {
		rows = append(rows, drawer)
	}

	var bar tele.Row
	if canGoBack {
		bar = append(bar, btnBack)
	}
	for _, route := range navigation.TopLevel() {
		if route != current {
			bar = append(bar, navButton(route))
		}
	}
	if len(bar) > 0 {
		rows = append(rows, bar)
	}
	return rows
}

func renderOpening(state domain.StateData) screen {
	if state.State == domain.StateWaitingForeignLang {
		return screen{
			text: fmt.Sprintf(msgOpeningForeign, state.FirstInput),
			rows: []tele.Row{{btnClear}},
		}
	}
	return screen{text: msgOpeningNative}
}

func renderHome(pair domain.LanguagePair, state domain.StateData) screen {
	if state.State == domain.StateWaitingForeignWord {
		return screen{
			text: fmt.Sprintf(msgHomeForeign, pair.Native, pair.Foreign, pair.Native, state.FirstInput, pair.Foreign),
			rows: []tele.Row{{btnClear}},
		}
	}
	return screen{text: fmt.Sprintf(msgHomeNative, pair.Native, pair.Foreign, pair.Native)}
}

// vocabPageSize is the number of words shown per vocabulary page
const vocabPageSize = 20

// maxTermLen caps how much of a single term is shown in a list line
const maxTermLen = 64

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// vocabPages returns the number of pages needed for count words
func vocabPages(count int) int {
	if count == 0 {
		return 1
	}
	return (count + vocabPageSize - 1) / vocabPageSize
}

// clampPage keeps page within the pages available for count words
func clampPage(page, count int) int {
	if last := vocabPages(count) - 1; page > last {
		page = last
	}
	if page < 0 {
		page = 0
	}
	return page
}

// renderVocab lists one page of the words in the given order, one delete
// button per word. page is zero based and must already be clamped.
func renderVocab(pair domain.LanguagePair, words []domain.Word, page int) screen {
	var b strings.Builder
	fmt.Fprintf(&b, msgVocabHeader, truncate(pair.Native, maxTermLen), truncate(pair.Foreign, maxTermLen))
	b.WriteString("\n\n")

	if len(words) == 0 {
		b.WriteString(msgVocabEmpty)
		return screen{text: b.String()}
	}

	totalPages := vocabPages(len(words))
	from := page * vocabPageSize
	to := min(from+vocabPageSize, len(words))

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, to-from+1)
	for i, w := range words[from:to] {
		fmt.Fprintf(&b, "%d. %s — %s\n", from+i+1, truncate(w.Native, maxTermLen), truncate(w.Foreign, maxTermLen))
		btn := markup.Data("🗑 "+truncate(w.Native, maxTermLen), btnDeleteWord.Unique, strconv.FormatInt(w.ID, 10))
		rows = append(rows, markup.Row(btn))
	}

	// Add pagination buttons if needed
	if totalPages > 1 {
		fmt.Fprintf(&b, "\n"+msgVocabPage, page+1, totalPages)

		navRow := tele.Row{}
		if page > 0 {
			navRow = append(navRow, markup.Data("⬅️", btnPage.Unique, strconv.Itoa(page-1)))
		}
		if page < totalPages-1 {
			navRow = append(navRow, markup.Data("➡️", btnPage.Unique, strconv.Itoa(page+1)))
		}
		rows = append(rows, navRow)
	}
	return screen{text: strings.TrimRight(b.String(), "\n"), rows: rows}
}

func resultLine(r game.Result) string {
	switch r {
	case game.ResultCorrect:
		return msgGuessRight
	case game.ResultWrong:
		return msgGuessWrong
	default:
		return ""
	}
}

func renderCorrectWord(g *game.CorrectWord) screen {
	text := fmt.Sprintf(msgCorrectWordPrompt, g.Prompt())
	if line := resultLine(g.Result()); line != "" {
		text += "\n\n" + line
	}
	return screen{text: text, rows: []tele.Row{{btnNext}}}
}

func renderHangman(g *game.Hangman) screen {
	text := fmt.Sprintf(msgHangmanPrompt, g.Hint(), g.Masked(), g.MistakesLeft())

	if guessed := g.Guessed(); len(guessed) > 0 {
		letters := make([]string, len(guessed))
		for i, r := range guessed {
			letters[i] = string(r)
		}
		text += "\n" + fmt.Sprintf(msgHangmanTried, strings.Join(letters, ", "))
	}

	switch g.State() {
	case game.HangmanWon:
		text += "\n\n" + fmt.Sprintf(msgHangmanWon, g.Answer())
	case game.HangmanLost:
		text += "\n\n" + fmt.Sprintf(msgHangmanLost, g.Answer())
	}
	return screen{text: text, rows: []tele.Row{{btnNext}}}
}

func renderAnagram(g *game.Anagram) screen {
	text := fmt.Sprintf(msgAnagramPrompt, g.Scrambled(), g.Hint())
	if line := resultLine(g.Result()); line != "" {
		text += "\n\n" + line
	}
	return screen{text: text, rows: []tele.Row{{btnNext}}}
}

func renderLanguageChange(pair domain.LanguagePair, state domain.StateData) screen {
	current := fmt.Sprintf(msgChangeCurrent, pair.Native, pair.Foreign)

	switch state.State {
	case domain.StateWaitingNewForeign:
		return screen{
			text: current + "\n\n" + fmt.Sprintf(msgChangeForeign, state.FirstInput),
			rows: []tele.Row{{btnClear}},
		}
	case domain.StateConfirmingChange:
		return screen{
			text: fmt.Sprintf(msgChangeConfirm, state.FirstInput, state.SecondInput),
			rows: []tele.Row{{btnConfirm, btnCancel}},
		}
	case domain.StateReconfirmingChange:
		return screen{
			text: msgChangeReconfirm,
			rows: []tele.Row{{btnConfirm, btnCancel}},
		}
	default:
		return screen{text: current + "\n\n" + msgChangeNative}
	}
}
