// Package navigation tracks which screen a chat is on and how it got there.
package navigation

import (
	"errors"
	"fmt"
)

// Route identifies a screen
type Route string

const (
	Opening         Route = "o_screen"
	Home            Route = "home"
	VocabList       Route = "vocabList"
	CorrectWordGame Route = "correctWordGame"
	HangmanGame     Route = "hangmanGame"
	AnagramGame     Route = "anagramGame"
	LanguageChange  Route = "languageChange"
)

// ErrUnknownRoute is returned for a route that names no screen
var ErrUnknownRoute = errors.New("unknown route")

var titles = map[Route]string{
	Opening:         "Welcome",
	Home:            "Add words",
	VocabList:       "Vocabulary",
	CorrectWordGame: "Correct word",
	HangmanGame:     "Hangman",
	AnagramGame:     "Anagram",
	LanguageChange:  "Change languages",
}

// Title returns the human readable name of a route
func (r Route) Title() string {
	return titles[r]
}

// Valid reports whether r names a screen
func (r Route) Valid() bool {
	_, ok := titles[r]
	return ok
}

// TopLevel returns the routes reachable from the bottom bar
func TopLevel() []Route {
	return []Route{Home, VocabList}
}

// Drawer returns the routes listed in the side menu
func Drawer() []Route {
	return []Route{CorrectWordGame, AnagramGame, LanguageChange, HangmanGame}
}

// StartRoute picks the first screen: the opening screen until a language
// pair has been configured, the home screen afterwards
func StartRoute(configured bool) Route {
	if configured {
		return Home
	}
	return Opening
}

// Navigator keeps the back stack of one chat. Not safe for concurrent use.
type Navigator struct {
	start   Route
	history []Route
}

// NewNavigator creates a navigator positioned on the start route. The start
// route is fixed for the navigator's lifetime.
func NewNavigator(configured bool) *Navigator {
	start := StartRoute(configured)
	return &Navigator{
		start:   start,
		history: []Route{start},
	}
}

// Start returns the route the navigator was created on
func (n *Navigator) Start() Route {
	return n.start
}

// Current returns the visible route
func (n *Navigator) Current() Route {
	return n.history[len(n.history)-1]
}

// Navigate moves to route. Top level routes replace the whole stack so the
// bottom bar never piles up history. Navigating to the current route is a no-op.
func (n *Navigator) Navigate(route Route) error {
	if !route.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	if route == n.Current() {
		return nil
	}

	for _, top := range TopLevel() {
		if route == top {
			n.history = []Route{route}
			return nil
		}
	}
	n.history = append(n.history, route)
	return nil
}

// Back pops the current route. It reports false when already at the root.
func (n *Navigator) Back() bool {
	if len(n.history) <= 1 {
		return false
	}
	n.history = n.history[:len(n.history)-1]
	return true
}

// Depth returns the number of routes on the stack
func (n *Navigator) Depth() int {
	return len(n.history)
}
