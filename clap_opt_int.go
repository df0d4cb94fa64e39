package clap

import (
	"strconv"

	"golang.org/x/text/language"
)

// IntOption accepts platform-int values.
type IntOption struct {
	Option[int]
}

func NewInt(short string) *IntOption {
	return &IntOption{Option: newOption[int](short, true)}
}

func (o *IntOption) SetLong(l string) *IntOption {
	o.long = l
	return o
}

func (o *IntOption) SetUsage(u string) *IntOption {
	o.description = u
	return o
}

func (o *IntOption) SetMandatory(b bool) *IntOption {
	o.setMandatory(b)
	return o
}

func (o *IntOption) SetAllowMany(b bool) *IntOption {
	o.setAllowMany(b)
	return o
}

func (o *IntOption) SetMinMax(minCount, maxCount int) *IntOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *IntOption) SetHidden(b bool) *IntOption {
	o.hidden = b
	return o
}

func (o *IntOption) Register(p *Parser) (*IntOption, error) {
	return o, p.register(o)
}

func (o *IntOption) assign(raw string, loc language.Tag) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	return o.add(v)
}

// Int64Option accepts 64-bit integer values.
type Int64Option struct {
	Option[int64]
}

func NewInt64(short string) *Int64Option {
	return &Int64Option{Option: newOption[int64](short, true)}
}

func (o *Int64Option) SetLong(l string) *Int64Option {
	o.long = l
	return o
}

func (o *Int64Option) SetUsage(u string) *Int64Option {
	o.description = u
	return o
}

func (o *Int64Option) SetMandatory(b bool) *Int64Option {
	o.setMandatory(b)
	return o
}

func (o *Int64Option) SetAllowMany(b bool) *Int64Option {
	o.setAllowMany(b)
	return o
}

func (o *Int64Option) SetMinMax(minCount, maxCount int) *Int64Option {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *Int64Option) SetHidden(b bool) *Int64Option {
	o.hidden = b
	return o
}

func (o *Int64Option) Register(p *Parser) (*Int64Option, error) {
	return o, p.register(o)
}

func (o *Int64Option) assign(raw string, loc language.Tag) error {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	return o.add(v)
}
