package clap

import (
	"time"

	"golang.org/x/text/language"
)

// DefaultDateLayout is the layout DateOption parses with unless overridden.
const DefaultDateLayout = "2006-01-02"

// DateOption accepts civil dates, ISO-8601 by default.
type DateOption struct {
	Option[time.Time]
	layout string
}

func NewDate(short string) *DateOption {
	return &DateOption{Option: newOption[time.Time](short, true), layout: DefaultDateLayout}
}

func (o *DateOption) SetLong(l string) *DateOption {
	o.long = l
	return o
}

func (o *DateOption) SetUsage(u string) *DateOption {
	o.description = u
	return o
}

func (o *DateOption) SetMandatory(b bool) *DateOption {
	o.setMandatory(b)
	return o
}

func (o *DateOption) SetAllowMany(b bool) *DateOption {
	o.setAllowMany(b)
	return o
}

func (o *DateOption) SetMinMax(minCount, maxCount int) *DateOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *DateOption) SetHidden(b bool) *DateOption {
	o.hidden = b
	return o
}

// SetLayout overrides the reference layout used for parsing and for the
// format example shown in the usage message.
func (o *DateOption) SetLayout(layout string) *DateOption {
	o.layout = layout
	return o
}

// Layout returns the layout dates are parsed with.
func (o *DateOption) Layout() string { return o.layout }

func (o *DateOption) Register(p *Parser) (*DateOption, error) {
	return o, p.register(o)
}

func (o *DateOption) assign(raw string, loc language.Tag) error {
	v, err := time.Parse(o.layout, raw)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	return o.add(v)
}
