package clap

import "golang.org/x/text/language"

// Filter constrains the raw values a string-backed option accepts.
// It returns true when the value is acceptable.
type Filter func(string) bool

// StringOption accepts any string value, optionally constrained by a Filter.
type StringOption struct {
	Option[string]
	filter Filter
}

func NewString(short string) *StringOption {
	return &StringOption{Option: newOption[string](short, true)}
}

func (o *StringOption) SetLong(l string) *StringOption {
	o.long = l
	return o
}

func (o *StringOption) SetUsage(u string) *StringOption {
	o.description = u
	return o
}

func (o *StringOption) SetMandatory(b bool) *StringOption {
	o.setMandatory(b)
	return o
}

func (o *StringOption) SetAllowMany(b bool) *StringOption {
	o.setAllowMany(b)
	return o
}

func (o *StringOption) SetMinMax(minCount, maxCount int) *StringOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *StringOption) SetHidden(b bool) *StringOption {
	o.hidden = b
	return o
}

func (o *StringOption) SetFilter(f Filter) *StringOption {
	o.filter = f
	return o
}

func (o *StringOption) Register(p *Parser) (*StringOption, error) {
	return o, p.register(o)
}

func (o *StringOption) assign(raw string, loc language.Tag) error {
	if o.filter != nil && !o.filter(raw) {
		return newParseError(ErrIllegalValue, o.displayName(), raw)
	}
	return o.add(raw)
}
