package cli

import (
	"fmt"

	"github.com/alexanderramin/coursepilot/internal/domain"
	"github.com/spf13/pflag"
)

// termFlag is a pflag.Value accepting Fall, Spring or Summer in any case.
// The zero value means no term filter.
type termFlag struct {
	term *domain.Term
}

var _ pflag.Value = (*termFlag)(nil)

func (f *termFlag) String() string {
	if f.term == nil {
		return ""
	}
	return string(*f.term)
}

func (f *termFlag) Set(s string) error {
	t, ok := domain.ParseTerm(s)
	if !ok || t == domain.TermBoth {
		return fmt.Errorf("term must be Fall, Spring or Summer, got %q", s)
	}
	f.term = &t
	return nil
}

func (f *termFlag) Type() string {
	return "term"
}

// Term returns the parsed term, or nil when the flag was not set.
func (f *termFlag) Term() *domain.Term {
	return f.term
}
