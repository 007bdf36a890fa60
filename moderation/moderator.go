package moderation

import (
	"log/slog"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks forbidden words in free text.
// Matching ignores case, punctuation, spacing and common leet substitutions.
type Moderator struct {
	log         *slog.Logger
	machine     *goahocorasick.Machine
	replacement rune
}

// folded is a searchable copy of a text; origin[i] is the index in the
// original runes of folded rune i.
type folded struct {
	runes  []rune
	origin []int
}

// NewModerator builds the automaton on the folded dictionary.
// An empty dictionary yields a moderator that never censors anything.
// A nil logger is replaced by one discarding everything.
func NewModerator(words []string, replacement rune, log *slog.Logger) (Moderator, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	keys := lo.Uniq(lo.FilterMap(words, func(word string, _ int) (string, bool) {
		f := fold(word)
		return string(f.runes), len(f.runes) > 0
	}))
	if len(keys) == 0 {
		return Moderator{log: log, replacement: replacement}, nil
	}

	slices.Sort(keys)
	patterns := lo.Map(keys, func(key string, _ int) []rune { return []rune(key) })

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{log: log, machine: machine, replacement: replacement}, nil
}

// Censor replaces every rune of a matched span, noise included, with the replacement rune.
func (m Moderator) Censor(text string) string {
	if m.machine == nil {
		return text
	}
	f := fold(text)
	if len(f.runes) == 0 {
		return text
	}
	terms := m.machine.MultiPatternSearch(f.runes, false)
	if len(terms) == 0 {
		return text
	}

	out := []rune(text)
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(f.origin) {
			continue
		}
		for i := f.origin[start]; i <= f.origin[end-1]; i++ {
			out[i] = m.replacement
		}
	}
	m.log.Debug("Message censored", "matches", len(terms))
	return string(out)
}

func fold(text string) folded {
	runes := []rune(text)
	f := folded{runes: make([]rune, 0, len(runes)), origin: make([]int, 0, len(runes))}
	for i, r := range runes {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		f.runes = append(f.runes, unicode.ToLower(r))
		f.origin = append(f.origin, i)
	}
	return f
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return r
}
