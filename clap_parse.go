package clap

import (
	"fmt"
)

// Parse classifies each argument as an option reference or a non-option
// argument, accumulating typed values on the registered descriptors and
// validating occurrence counts once the whole sequence is consumed.
//
// Each call starts a fresh run: previously accumulated values and non-option
// arguments are cleared first. On failure the run aborts immediately with a
// *ParseError; values assigned before the failing token remain recorded.
func (p *Parser) Parse(args []string) error {
	for _, o := range p.options {
		o.clearValues()
	}
	p.nonOptionArgs = nil

	rules := compileRules(p.options)

	var spare []string
	endOfOptions := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// A lone "-" is preserved as a non-option argument (conventionally a
		// request to read from stdin); it does not end option processing.
		if endOfOptions || arg == "-" {
			spare = append(spare, arg)
			continue
		}
		if arg == "--" {
			endOfOptions = true
			continue
		}

		if m := rules.longOpt.FindStringSubmatch(arg); m != nil {
			opt, ok := p.lookupLong(m[1])
			if !ok {
				return newParseError(ErrUnknownOption, m[1], "")
			}
			n, err := p.assignValue(opt, m[2], args[i+1:])
			if err != nil {
				return err
			}
			i += n
			continue
		}

		if rules.flagCluster != nil {
			if m := rules.flagCluster.FindStringSubmatch(arg); m != nil {
				if err := p.setFlags(m[1]); err != nil {
					return err
				}
				continue
			}
		}

		if rules.flagsThenValue != nil {
			if m := rules.flagsThenValue.FindStringSubmatch(arg); m != nil {
				if err := p.setFlags(m[1]); err != nil {
					return err
				}
				opt, ok := p.lookupShort(m[2])
				if !ok {
					return newParseError(ErrUnknownOption, m[2], "")
				}
				n, err := p.assignValue(opt, m[3], args[i+1:])
				if err != nil {
					return err
				}
				i += n
				continue
			}
		}

		if m := rules.shortOpt.FindStringSubmatch(arg); m != nil {
			opt, ok := p.lookupShort(m[1])
			if !ok {
				return newParseError(ErrUnknownOption, m[1], "")
			}
			n, err := p.assignValue(opt, m[2], args[i+1:])
			if err != nil {
				return err
			}
			i += n
			continue
		}

		spare = append(spare, arg)
	}

	p.nonOptionArgs = spare
	return p.validateCounts()
}

// assignValue implements the shared value-assignment procedure for long,
// short, and flags-then-value matches. inline is the value attached to the
// token itself ("" when absent; the rule grammar guarantees attached values
// are non-empty). rest is the unconsumed remainder of the argument list.
// Returns how many extra tokens were consumed (0 or 1).
func (p *Parser) assignValue(opt option, inline string, rest []string) (int, error) {
	s := opt.spec()
	b, isFlag := opt.(*BoolOption)

	if inline != "" {
		// Flags reject attached values unless repetition leaves room to
		// record another boolean occurrence (-v=false on a repeatable flag).
		if s.requiresValue || (isFlag && s.maxCount > 1 && opt.numValues() < s.maxCount) {
			return 0, opt.assign(inline, p.locale)
		}
		return 0, newParseError(ErrIllegalValue, s.displayName(), inline)
	}

	if s.requiresValue {
		if len(rest) == 0 {
			return 0, newParseError(ErrIllegalValue, s.displayName(), "")
		}
		return 1, opt.assign(rest[0], p.locale)
	}

	if isFlag {
		return 0, b.setFlag()
	}
	return 0, nil
}

// setFlags records one occurrence for every flag character in a cluster.
// The cluster rule only matches registered flag short names, but each
// character is still resolved and checked.
func (p *Parser) setFlags(cluster string) error {
	for _, r := range cluster {
		name := string(r)
		opt, ok := p.lookupShort(name)
		if !ok {
			return newParseError(ErrUnknownOption, name, "")
		}
		s := opt.spec()
		if s.requiresValue {
			return newParseError(ErrNotFlag, s.displayName(), name)
		}
		b, ok := opt.(*BoolOption)
		if !ok {
			return newParseError(ErrNotFlag, s.displayName(), name)
		}
		if err := b.setFlag(); err != nil {
			return err
		}
	}
	return nil
}

// validateCounts enforces each option's occurrence bounds after the scan.
func (p *Parser) validateCounts() error {
	for _, o := range p.options {
		s := o.spec()
		n := o.numValues()
		if s.minCount > 0 && n == 0 {
			return newParseError(ErrIllegalValue, s.displayName(), "")
		}
		if n < s.minCount || n > s.maxCount {
			return newParseError(ErrInvalidCount, s.displayName(), fmt.Sprint(n))
		}
	}
	return nil
}

// ParseOrExit parses args and, on failure, prints the error followed by the
// long usage message to stderr and exits with status 1.
func (p *Parser) ParseOrExit(args []string) {
	if err := p.Parse(args); err != nil {
		fmt.Fprintln(stderrWriter, err.Error())
		fmt.Fprintln(stderrWriter)
		fmt.Fprint(stderrWriter, p.Usage(true))
		osExit(1)
	}
}
