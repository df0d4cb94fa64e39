package clap

import (
	"fmt"
	"strings"
)

// DumpString renders the parser's registry and last-parse state in a
// human-readable form, for debugging.
func (p *Parser) DumpString() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parser: %s\n", p.name))
	sb.WriteString(fmt.Sprintf("Locale: %s\n", p.locale))
	sb.WriteString("Options:\n")
	for _, o := range p.options {
		s := o.spec()
		kind := "flag"
		if s.requiresValue {
			kind = "value"
		}
		sb.WriteString(fmt.Sprintf("  %s: %s, count=%d, min=%d, max=%d",
			s.displayName(), kind, o.numValues(), s.minCount, s.maxCount))
		if s.hidden {
			sb.WriteString(", hidden")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Non-option args:\n")
	for _, a := range p.nonOptionArgs {
		sb.WriteString(fmt.Sprintf("  %q\n", a))
	}
	return sb.String()
}

// Dump writes DumpString to the configured stdout writer.
func (p *Parser) Dump() {
	fmt.Fprint(stdoutWriter, p.DumpString())
}
