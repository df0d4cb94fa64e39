package clap

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

func initColorFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CLAP_COLOR"))) {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let fatih/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}

// SetAppString overrides the launch text shown at the start of the usage
// synopsis (defaults to the parser name).
func (p *Parser) SetAppString(s string) *Parser {
	p.appString = s
	return p
}

// SetSuffixArgs sets trailing argument text appended to the synopsis,
// e.g. "<input-files>".
func (p *Parser) SetSuffixArgs(s string) *Parser {
	p.suffixArgs = s
	return p
}

// SetExtraInfo sets additional text shown before the option list in the
// long usage message.
func (p *Parser) SetExtraInfo(s string) *Parser {
	p.extraInfo = s
	return p
}

// ShowLongNamesInShortUsage makes the short usage message include long
// option names alongside the short ones.
func (p *Parser) ShowLongNamesInShortUsage() *Parser {
	p.showLongInShort = true
	return p
}

// PrintUsage writes the usage message to w.
func (p *Parser) PrintUsage(w io.Writer, long bool) {
	fmt.Fprint(w, p.Usage(long))
}

// Usage renders the usage message derived from the registered options, in
// registration order. Hidden options are omitted. The long form includes
// per-option descriptions; the short form is a one-line synopsis.
func (p *Parser) Usage(long bool) string {
	initColorFromEnv()
	if long {
		return p.longUsage()
	}
	return p.shortUsage()
}

func (p *Parser) launchText() string {
	if p.appString != "" {
		return p.appString
	}
	return p.name
}

func (p *Parser) shortUsage() string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("Usage:") + " " + BoldS(p.launchText()))
	for _, o := range p.options {
		s := o.spec()
		if s.hidden {
			continue
		}
		sb.WriteString(" " + CyanS("%s", p.synopsisEntry(o, p.showLongInShort)))
	}
	if p.suffixArgs != "" {
		sb.WriteString(" " + CyanS("%s", p.suffixArgs))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (p *Parser) longUsage() string {
	var sb strings.Builder
	sb.WriteString(GreenBoldS("Usage:") + "\n  ")
	sb.WriteString(BoldS(p.launchText()))
	if len(p.options) > 0 {
		sb.WriteString(" " + CyanS("<options>"))
	}
	if p.suffixArgs != "" {
		sb.WriteString(" " + CyanS("%s", p.suffixArgs))
	}
	sb.WriteString("\n")

	if p.extraInfo != "" {
		sb.WriteString("\n" + p.extraInfo + "\n")
	}

	visible := false
	for _, o := range p.options {
		if !o.spec().hidden {
			visible = true
			break
		}
	}
	if !visible {
		return sb.String()
	}

	sb.WriteString("\n" + GreenBoldS("Options:") + "\n")
	for _, o := range p.options {
		s := o.spec()
		if s.hidden {
			continue
		}
		sb.WriteString("  " + p.synopsisEntry(o, true))
		if s.IsMandatory() {
			sb.WriteString("    (mandatory)")
		}
		sb.WriteString("\n")
		if desc := p.optionDescription(o); desc != "" {
			sb.WriteString("        " + desc + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// synopsisEntry renders one option for the synopsis, e.g. "-w,--width <int>"
// or "[-v]" for an optional flag.
func (p *Parser) synopsisEntry(o option, withLong bool) string {
	s := o.spec()
	var sb strings.Builder
	sb.WriteString("-" + s.short)
	if withLong && s.long != "" {
		sb.WriteString(",--" + s.long)
	}
	if t := typeString(o); t != "" {
		sb.WriteString(" <" + t + ">")
	}
	entry := sb.String()
	if !s.IsMandatory() {
		entry = "[" + entry + "]"
	}
	return entry
}

// optionDescription renders the long-usage description line, prefixing
// enumerated options with their allowed values and date options with a
// format example.
func (p *Parser) optionDescription(o option) string {
	desc := o.spec().description
	switch t := o.(type) {
	case *EnumStringOption:
		quoted := make([]string, len(t.allowed))
		for i, v := range t.allowed {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		return joinDesc("One of: "+strings.Join(quoted, ", ")+".", desc)
	case *EnumIntOption:
		vals := make([]string, len(t.allowed))
		for i, v := range t.allowed {
			vals[i] = fmt.Sprint(v)
		}
		return joinDesc("One of: "+strings.Join(vals, ", ")+".", desc)
	case *DateOption:
		return joinDesc("Format example: "+time.Now().Format(t.layout)+".", desc)
	}
	return desc
}

func joinDesc(prefix, desc string) string {
	if desc == "" {
		return prefix
	}
	return prefix + " " + desc
}

func typeString(o option) string {
	switch o.(type) {
	case *BoolOption:
		return ""
	case *IntOption, *EnumIntOption:
		return "int"
	case *Int64Option:
		return "int64"
	case *Float64Option:
		return "float"
	case *StringOption, *EnumStringOption:
		return "str"
	case *DateOption:
		return "date"
	case *FileOption:
		return "path"
	}
	return "value"
}
