// Package clap parses command-line arguments against a registry of declared
// options. It supports POSIX-style short options (-v), GNU-style long options
// (--verbose), DOS-style prefixes (/v), flag clustering (-abc), and values
// attached with a space, '=', ':' or nothing at all (-s 10, -s=10, -s:10,
// -s10). Option processing stops at "--"; a lone "-" is always passed
// through as a non-option argument.
package clap

import (
	"slices"

	"golang.org/x/text/language"
)

// Parser is an ordered registry of option descriptors plus the non-option
// arguments collected by the last parse run.
//
// A Parser is not safe for concurrent use: parsing mutates the registered
// descriptors. Use one Parser per goroutine, or serialize calls externally.
type Parser struct {
	name    string
	locale  language.Tag
	options []option

	nonOptionArgs []string

	// usage configuration
	appString       string
	suffixArgs      string
	extraInfo       string
	showLongInShort bool
}

// NewParser returns a parser that renders usage for the given program name.
func NewParser(name string) *Parser {
	return NewParserLocale(name, language.Und)
}

// NewParserLocale returns a parser whose value parsers receive the given
// locale (used e.g. for case folding in enumerated options).
func NewParserLocale(name string, loc language.Tag) *Parser {
	return &Parser{name: name, locale: loc}
}

// Locale returns the locale threaded into value parsing.
func (p *Parser) Locale() language.Tag { return p.locale }

// register appends an option after validating its name grammar, occurrence
// bounds, and uniqueness against the existing registry. Called by the typed
// Register methods.
func (p *Parser) register(o option) error {
	s := o.spec()
	if err := s.validate(); err != nil {
		return err
	}
	for _, existing := range p.options {
		es := existing.spec()
		if es.short == s.short {
			return newParseError(ErrDuplicateName, s.short, "")
		}
		if es.long != "" && s.long != "" && es.long == s.long {
			return newParseError(ErrDuplicateName, s.long, "")
		}
	}
	p.options = append(p.options, o)
	return nil
}

// Unregister removes the option found by either its short or long name.
func (p *Parser) Unregister(name string) error {
	for i, o := range p.options {
		s := o.spec()
		if s.short == name || (s.long != "" && s.long == name) {
			p.options = slices.Delete(p.options, i, i+1)
			return nil
		}
	}
	return newParseError(ErrUnknownOption, name, "")
}

// LookupShort returns the option registered under the given short name.
// The result is one of the concrete option types (*BoolOption, *IntOption, ...).
func (p *Parser) LookupShort(name string) (any, bool) {
	if o, ok := p.lookupShort(name); ok {
		return o, true
	}
	return nil, false
}

// LookupLong returns the option registered under the given long name.
func (p *Parser) LookupLong(name string) (any, bool) {
	if o, ok := p.lookupLong(name); ok {
		return o, true
	}
	return nil, false
}

func (p *Parser) lookupShort(name string) (option, bool) {
	for _, o := range p.options {
		if o.spec().short == name {
			return o, true
		}
	}
	return nil, false
}

func (p *Parser) lookupLong(name string) (option, bool) {
	for _, o := range p.options {
		if s := o.spec(); s.long != "" && s.long == name {
			return o, true
		}
	}
	return nil, false
}

// SetHidden excludes the option found by either name from usage output.
// Hidden options still participate in matching.
func (p *Parser) SetHidden(name string) error {
	o, ok := p.lookupShort(name)
	if !ok {
		o, ok = p.lookupLong(name)
	}
	if !ok {
		return newParseError(ErrUnknownOption, name, "")
	}
	o.spec().hidden = true
	return nil
}

// NonOptionArgs returns the arguments from the last parse run that were not
// consumed as options, in order. This includes "orphan" arguments found in
// between options, and everything after "--".
func (p *Parser) NonOptionArgs() []string {
	return p.nonOptionArgs
}

// SolitaryHyphen reports whether a lone "-" argument was parsed, the
// conventional request to read from standard input. The "-" also appears in
// NonOptionArgs; this is a convenience query.
func (p *Parser) SolitaryHyphen() bool {
	return slices.Contains(p.nonOptionArgs, "-")
}
