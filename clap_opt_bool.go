package clap

import (
	"strings"

	"golang.org/x/text/language"
)

// BoolOption is a flag: its mere presence appends true. It never consumes
// the next argument, but an attached value (-v=false, --verbose:0) is parsed
// when the option allows repetition.
type BoolOption struct {
	Option[bool]
}

var boolTrueValues = []string{"true", "t", "yes", "y", "on", "1"}
var boolFalseValues = []string{"false", "f", "no", "n", "off", "0"}

func NewBool(short string) *BoolOption {
	return &BoolOption{Option: newOption[bool](short, false)}
}

func (o *BoolOption) SetLong(l string) *BoolOption {
	o.long = l
	return o
}

func (o *BoolOption) SetUsage(u string) *BoolOption {
	o.description = u
	return o
}

func (o *BoolOption) SetMandatory(b bool) *BoolOption {
	o.setMandatory(b)
	return o
}

func (o *BoolOption) SetAllowMany(b bool) *BoolOption {
	o.setAllowMany(b)
	return o
}

func (o *BoolOption) SetMinMax(minCount, maxCount int) *BoolOption {
	o.minCount = minCount
	o.maxCount = maxCount
	return o
}

func (o *BoolOption) SetHidden(b bool) *BoolOption {
	o.hidden = b
	return o
}

func (o *BoolOption) Register(p *Parser) (*BoolOption, error) {
	return o, p.register(o)
}

// setFlag records a bare occurrence.
func (o *BoolOption) setFlag() error {
	return o.add(true)
}

func (o *BoolOption) assign(raw string, loc language.Tag) error {
	s := strings.ToLower(raw)
	for _, t := range boolTrueValues {
		if s == t {
			return o.add(true)
		}
	}
	for _, f := range boolFalseValues {
		if s == f {
			return o.add(false)
		}
	}
	return newParseError(ErrIllegalValue, o.displayName(), raw)
}

// IsSet reports whether the flag occurred at least once with a true value.
func (o *BoolOption) IsSet() bool {
	for _, v := range o.values {
		if v {
			return true
		}
	}
	return false
}
