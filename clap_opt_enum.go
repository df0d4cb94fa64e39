package clap

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnumStringOption restricts values to a declared set of strings.
//
// Matching is by substring containment, not equality: the raw argument is
// accepted when exactly one allowed value contains it. Candidates are first
// selected by containment against the locale-lowercased allowed values; if
// several match, a case-sensitive containment pass disambiguates. Typing "pn"
// against {"png", "jpg"} selects "png"; typing "g" matches both and fails.
type EnumStringOption struct {
	Option[string]
	allowed []string
}

func NewEnumString(short string, allowed ...string) *EnumStringOption {
	return &EnumStringOption{Option: newOption[string](short, true), allowed: allowed}
}

func (o *EnumStringOption) SetLong(l string) *EnumStringOption {
	o.long = l
	return o
}

func (o *EnumStringOption) SetUsage(u string) *EnumStringOption {
	o.description = u
	return o
}

func (o *EnumStringOption) SetMandatory(b bool) *EnumStringOption {
	o.setMandatory(b)
	return o
}

func (o *EnumStringOption) SetAllowMany(b bool) *EnumStringOption {
	o.setAllowMany(b)
	return o
}

func (o *EnumStringOption) SetMinMax(minCount, maxCount int) *EnumStringOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *EnumStringOption) SetHidden(b bool) *EnumStringOption {
	o.hidden = b
	return o
}

func (o *EnumStringOption) Register(p *Parser) (*EnumStringOption, error) {
	return o, p.register(o)
}

// AllowedValues returns the declared value set.
func (o *EnumStringOption) AllowedValues() []string { return o.allowed }

func (o *EnumStringOption) assign(raw string, loc language.Tag) error {
	v, err := o.match(raw, loc)
	if err != nil {
		return err
	}
	return o.add(v)
}

// match resolves raw to the single allowed value containing it, appending
// the canonical allowed value rather than the raw argument.
func (o *EnumStringOption) match(raw string, loc language.Tag) (string, error) {
	lower := cases.Lower(loc)
	var candidates []string
	for _, av := range o.allowed {
		if strings.Contains(lower.String(av), raw) {
			candidates = append(candidates, av)
		}
	}
	if len(candidates) == 0 {
		return "", newParseError(ErrIllegalValue, o.displayName(), raw)
	}
	if len(candidates) > 1 {
		var exact []string
		for _, av := range candidates {
			if strings.Contains(av, raw) {
				exact = append(exact, av)
			}
		}
		if len(exact) != 1 {
			return "", newParseError(ErrIllegalValue, o.displayName(), raw)
		}
		candidates = exact
	}
	return candidates[0], nil
}

// EnumIntOption restricts values to a declared set of integers.
// Unlike EnumStringOption, matching is exact.
type EnumIntOption struct {
	Option[int]
	allowed []int
}

func NewEnumInt(short string, allowed ...int) *EnumIntOption {
	return &EnumIntOption{Option: newOption[int](short, true), allowed: allowed}
}

func (o *EnumIntOption) SetLong(l string) *EnumIntOption {
	o.long = l
	return o
}

func (o *EnumIntOption) SetUsage(u string) *EnumIntOption {
	o.description = u
	return o
}

func (o *EnumIntOption) SetMandatory(b bool) *EnumIntOption {
	o.setMandatory(b)
	return o
}

func (o *EnumIntOption) SetAllowMany(b bool) *EnumIntOption {
	o.setAllowMany(b)
	return o
}

func (o *EnumIntOption) SetMinMax(minCount, maxCount int) *EnumIntOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *EnumIntOption) SetHidden(b bool) *EnumIntOption {
	o.hidden = b
	return o
}

func (o *EnumIntOption) Register(p *Parser) (*EnumIntOption, error) {
	return o, p.register(o)
}

// AllowedValues returns the declared value set.
func (o *EnumIntOption) AllowedValues() []int { return o.allowed }

func (o *EnumIntOption) assign(raw string, loc language.Tag) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	for _, av := range o.allowed {
		if v == av {
			return o.add(v)
		}
	}
	return newParseError(ErrIllegalValue, o.displayName(), raw)
}
