package domain

import "strings"

// LanguagePair is the (native, foreign) language combination the words belong to
type LanguagePair struct {
	ID      int64
	Native  string
	Foreign string
}

// NewLanguagePair builds an unsaved language pair, rejecting empty names
func NewLanguagePair(native, foreign string) (LanguagePair, error) {
	p := LanguagePair{Native: native, Foreign: foreign}
	if err := p.Validate(); err != nil {
		return LanguagePair{}, err
	}
	return p, nil
}

// Validate checks that both language names are present
func (p LanguagePair) Validate() error {
	if strings.TrimSpace(p.Native) == "" || strings.TrimSpace(p.Foreign) == "" {
		return ErrEmptyField
	}
	return nil
}

// Latest returns the active pair: the last one in insertion order
func Latest(pairs []LanguagePair) (LanguagePair, bool) {
	if len(pairs) == 0 {
		return LanguagePair{}, false
	}
	latest := pairs[0]
	for _, p := range pairs[1:] {
		if p.ID > latest.ID {
			latest = p
		}
	}
	return latest, true
}
