package clap

import (
	"strconv"

	"golang.org/x/text/language"
)

// Float64Option accepts floating-point values.
type Float64Option struct {
	Option[float64]
}

func NewFloat64(short string) *Float64Option {
	return &Float64Option{Option: newOption[float64](short, true)}
}

func (o *Float64Option) SetLong(l string) *Float64Option {
	o.long = l
	return o
}

func (o *Float64Option) SetUsage(u string) *Float64Option {
	o.description = u
	return o
}

func (o *Float64Option) SetMandatory(b bool) *Float64Option {
	o.setMandatory(b)
	return o
}

func (o *Float64Option) SetAllowMany(b bool) *Float64Option {
	o.setAllowMany(b)
	return o
}

func (o *Float64Option) SetMinMax(minCount, maxCount int) *Float64Option {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *Float64Option) SetHidden(b bool) *Float64Option {
	o.hidden = b
	return o
}

func (o *Float64Option) Register(p *Parser) (*Float64Option, error) {
	return o, p.register(o)
}

func (o *Float64Option) assign(raw string, loc language.Tag) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return o.illegalValue(raw, err)
	}
	return o.add(v)
}
