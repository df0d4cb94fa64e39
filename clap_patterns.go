package clap

import (
	"regexp"
	"strings"
)

// Name grammar shared by validation and rule synthesis.
const (
	shortNameExpr = `[A-Za-z0-9?@]`
	longNameExpr  = `[A-Za-z0-9][A-Za-z0-9-]*[A-Za-z0-9]`
)

var (
	shortNameRe = regexp.MustCompile(`^` + shortNameExpr + `$`)
	longNameRe  = regexp.MustCompile(`^` + longNameExpr + `$`)
)

// ruleSet holds the token-matching rules for one parse run. The flag-cluster
// and flags-then-value rules depend on which short names are registered as
// flags vs. value-taking options, so a ruleSet is only valid for the registry
// state it was compiled from.
//
// Rules, in the priority order the scanner applies them:
//
//	longOpt:        ^--(long)([=:]value)?$
//	flagCluster:    ^[-/](f+)$           f = any flag short name
//	flagsThenValue: ^[-/](f+)(v)[=:]?value$   v = any value-option short name
//	shortOpt:       ^[-/](s)([=:]?value)?$    s = any single short-name char
type ruleSet struct {
	longOpt        *regexp.Regexp
	flagCluster    *regexp.Regexp // nil when no flag options are registered
	flagsThenValue *regexp.Regexp // nil when either partition is empty
	shortOpt       *regexp.Regexp
}

// compileRules derives the matching rules from the current registry contents.
// It is a pure function of the option list and is invoked once at the start
// of each parse run.
func compileRules(opts []option) ruleSet {
	var flagChars, valueChars strings.Builder
	for _, o := range opts {
		s := o.spec()
		if s.requiresValue {
			valueChars.WriteString(regexp.QuoteMeta(s.short))
		} else {
			flagChars.WriteString(regexp.QuoteMeta(s.short))
		}
	}

	rs := ruleSet{
		longOpt:  regexp.MustCompile(`^--(` + longNameExpr + `)(?:[=:](\S+))?$`),
		shortOpt: regexp.MustCompile(`^[-/](` + shortNameExpr + `)(?:[=:]?(\S+))?$`),
	}
	if flagChars.Len() > 0 {
		rs.flagCluster = regexp.MustCompile(`^[-/]([` + flagChars.String() + `]+)$`)
		if valueChars.Len() > 0 {
			rs.flagsThenValue = regexp.MustCompile(
				`^[-/]([` + flagChars.String() + `]+)([` + valueChars.String() + `])(?:[=:]?(\S+))$`)
		}
	}
	return rs
}
