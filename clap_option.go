package clap

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	minCountLimit = 0
	// Arbitrary ceiling on how often a single option may occur.
	maxCountLimit = 100
)

// optionSpec holds the metadata shared by every option kind.
type optionSpec struct {
	short         string // single character from [A-Za-z0-9?@]
	long          string // optional, 2+ chars, hyphens allowed but not terminal
	description   string
	requiresValue bool
	minCount      int
	maxCount      int
	hidden        bool
}

// option is the interface every concrete option kind satisfies. The parser
// only ever sees options through it.
type option interface {
	spec() *optionSpec
	numValues() int
	clearValues()
	// assign parses raw with the given locale and appends the typed result,
	// enforcing the occurrence bounds.
	assign(raw string, loc language.Tag) error
}

// Option is the generic descriptor core embedded by each concrete option
// type. It accumulates the values parsed during one parse run.
type Option[T any] struct {
	optionSpec
	values []T
}

func newOption[T any](short string, requiresValue bool) Option[T] {
	// Options default to optional and single-occurrence; SetMandatory and
	// SetAllowMany widen the bounds.
	return Option[T]{optionSpec: optionSpec{
		short:         short,
		requiresValue: requiresValue,
		minCount:      minCountLimit,
		maxCount:      1,
	}}
}

func (o *Option[T]) spec() *optionSpec { return &o.optionSpec }
func (o *Option[T]) numValues() int    { return len(o.values) }
func (o *Option[T]) clearValues()      { o.values = nil }

// add appends a parsed value, enforcing the declared occurrence bounds.
func (o *Option[T]) add(v T) error {
	if o.maxCount == 0 {
		return newParseError(ErrIllegalValue, o.displayName(), fmt.Sprint(v))
	}
	if o.maxCount == 1 && len(o.values) > 0 {
		return newParseError(ErrDuplicateValue, o.displayName(), fmt.Sprint(v))
	}
	if len(o.values) >= o.maxCount {
		return newParseError(ErrValueLimit, o.displayName(), fmt.Sprint(v))
	}
	o.values = append(o.values, v)
	return nil
}

// Values returns the values accumulated during the last parse run, in order
// of occurrence. The returned slice must not be modified.
func (o *Option[T]) Values() []T { return o.values }

// Value returns the first parsed value, with ok false when the option was
// not given. Intended for options that cannot occur more than once.
func (o *Option[T]) Value() (v T, ok bool) {
	if len(o.values) == 0 {
		return v, false
	}
	return o.values[0], true
}

// ValueOr returns the single parsed value, or def when the option was not given.
func (o *Option[T]) ValueOr(def T) T {
	if v, ok := o.Value(); ok {
		return v
	}
	return def
}

// Count returns how many times the option occurred during the last parse run.
func (o *Option[T]) Count() int { return len(o.values) }

func (s *optionSpec) ShortName() string   { return s.short }
func (s *optionSpec) LongName() string    { return s.long }
func (s *optionSpec) Description() string { return s.description }

// RequiresValue reports whether the option must be followed by a value.
// False only for flag (boolean) options.
func (s *optionSpec) RequiresValue() bool { return s.requiresValue }

func (s *optionSpec) MinCount() int { return s.minCount }
func (s *optionSpec) MaxCount() int { return s.maxCount }

// IsMandatory reports whether at least one occurrence is required.
func (s *optionSpec) IsMandatory() bool { return s.minCount > 0 }

// AllowsMany reports whether the option may occur more than once.
func (s *optionSpec) AllowsMany() bool { return s.maxCount > 1 }

// IsHidden reports whether the option is excluded from usage output.
// Hidden options still participate in matching.
func (s *optionSpec) IsHidden() bool { return s.hidden }

// SetMinMaxCounts adjusts the occurrence bounds after construction.
func (s *optionSpec) SetMinMaxCounts(minCount, maxCount int) error {
	if minCount < minCountLimit {
		return fmt.Errorf("invalid min count %d for option %s", minCount, s.displayName())
	}
	if maxCount < minCount || maxCount > maxCountLimit {
		return fmt.Errorf("invalid max count %d for option %s", maxCount, s.displayName())
	}
	s.minCount = minCount
	s.maxCount = maxCount
	return nil
}

// displayName renders the option for diagnostics, e.g. "-s,--size" or "-v".
func (s *optionSpec) displayName() string {
	if s.long != "" {
		return "-" + s.short + ",--" + s.long
	}
	return "-" + s.short
}

func (s *optionSpec) setMandatory(b bool) {
	if b {
		if s.minCount < 1 {
			s.minCount = 1
		}
	} else {
		s.minCount = 0
	}
}

func (s *optionSpec) setAllowMany(b bool) {
	if b {
		s.maxCount = maxCountLimit
	} else {
		s.maxCount = 1
	}
}

// validate checks the name grammar and the occurrence bounds. Called by
// Parser.register before the option joins the registry.
func (s *optionSpec) validate() error {
	if s.short == "" {
		return fmt.Errorf("option short name cannot be empty")
	}
	if !shortNameRe.MatchString(s.short) {
		return fmt.Errorf("invalid option short name %q", s.short)
	}
	if s.long != "" && !longNameRe.MatchString(s.long) {
		return fmt.Errorf("invalid option long name %q", s.long)
	}
	if s.minCount < minCountLimit {
		return fmt.Errorf("invalid min count %d for option %s", s.minCount, s.displayName())
	}
	if s.maxCount < s.minCount || s.maxCount > maxCountLimit {
		return fmt.Errorf("invalid max count %d for option %s", s.maxCount, s.displayName())
	}
	return nil
}

// illegalValue wraps a type-specific parse failure as an ErrIllegalValue.
func (s *optionSpec) illegalValue(raw string, cause error) error {
	return newParseError(ErrIllegalValue, s.displayName(), raw).withCause(cause)
}
