package view

import (
	"regexp"
	"strings"
	"time"

	"github.com/bab-library/catalog-service/internal/model"
)

// AllGenres is the sentinel genre that disables genre filtering.
const AllGenres = "all"

// Filter projects the book collection by genre and free-text title match.
// Order is the input order; filtering never reorders or ranks.
func Filter(books []model.Book, genre, search string) []model.Book {
	search = strings.ToLower(search)
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if genre != "" && genre != AllGenres && b.Genre != genre {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Title), search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Layout is a presentation-only grouping policy. It never changes which
// books are shown, only how the filtered sequence is arranged.
type Layout struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Compact bool   `json:"compact"`
}

const (
	LayoutGrid    = "grid"
	LayoutList    = "list"
	LayoutCompact = "compact"
)

// LayoutFor maps a layout name to its policy. Unknown names fall back to
// the grid layout.
func LayoutFor(name string) Layout {
	switch name {
	case LayoutList:
		return Layout{Name: LayoutList, Columns: 1}
	case LayoutCompact:
		return Layout{Name: LayoutCompact, Columns: 4, Compact: true}
	default:
		return Layout{Name: LayoutGrid, Columns: 4}
	}
}

var ordinalSuffix = regexp.MustCompile(`(\d{1,2})(st|nd|rd|th)`)

// ParseEventDate interprets a freeform event date best-effort. The raw
// string stays authoritative either way; the parsed value only feeds
// calendar grouping.
func ParseEventDate(raw string) (time.Time, bool) {
	s := ordinalSuffix.ReplaceAllString(strings.TrimSpace(raw), "$1")
	for _, layout := range []string{
		"Monday, January 2, 2006",
		"January 2, 2006",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthGroup is one calendar bucket of events.
type MonthGroup struct {
	Label  string        `json:"label"`
	Events []model.Event `json:"events"`
}

// Calendar groups events by month, first appearance order. Events whose
// date does not parse ("every first Friday") keep the raw date string as
// their group label.
func Calendar(events []model.Event) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[string]int)
	for _, e := range events {
		label := e.Date
		if t, ok := ParseEventDate(e.Date); ok {
			label = t.Format("January 2006")
		}
		i, seen := index[label]
		if !seen {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}
