package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/coursepilot/internal/domain"
)

// TermSlot is one concrete planning term, e.g. Fall 2026.
type TermSlot struct {
	Term domain.Term
	Year int
}

func (t TermSlot) Label() string {
	return fmt.Sprintf("%s %d", t.Term, t.Year)
}

// Next rotates Fall -> Spring -> Summer -> Fall. The year advances when
// moving from Fall to Spring.
func (t TermSlot) Next() TermSlot {
	switch t.Term {
	case domain.TermFall:
		return TermSlot{Term: domain.TermSpring, Year: t.Year + 1}
	case domain.TermSpring:
		return TermSlot{Term: domain.TermSummer, Year: t.Year}
	default:
		return TermSlot{Term: domain.TermFall, Year: t.Year}
	}
}

// TermAt returns the term in session on date: January-May is Spring,
// June-July is Summer, August-December is Fall.
func TermAt(date time.Time) TermSlot {
	switch m := date.Month(); {
	case m <= time.May:
		return TermSlot{Term: domain.TermSpring, Year: date.Year()}
	case m <= time.July:
		return TermSlot{Term: domain.TermSummer, Year: date.Year()}
	default:
		return TermSlot{Term: domain.TermFall, Year: date.Year()}
	}
}
