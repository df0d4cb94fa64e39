package clap

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeparateAndClusteredFlagsAreEquivalent(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "-b", "-c"},
		{"-abc"},
		{"-ab", "-c"},
	} {
		p := NewParser("test")
		a, _ := NewBool("a").Register(p)
		b, _ := NewBool("b").Register(p)
		c, _ := NewBool("c").Register(p)

		err := p.Parse(args)
		assert.Nil(t, err, "args %v", args)
		assert.True(t, a.IsSet(), "args %v", args)
		assert.True(t, b.IsSet(), "args %v", args)
		assert.True(t, c.IsSet(), "args %v", args)
	}
}

func TestParseValueDelimiters(t *testing.T) {
	for _, args := range [][]string{
		{"-s", "10"},
		{"-s:10"},
		{"-s=10"},
		{"-s10"},
		{"--size", "10"},
		{"--size:10"},
		{"--size=10"},
	} {
		p := NewParser("test")
		s, _ := NewInt("s").SetLong("size").Register(p)

		err := p.Parse(args)
		assert.Nil(t, err, "args %v", args)
		assert.Equal(t, []int{10}, s.Values(), "args %v", args)
	}
}

func TestParseDosStylePrefix(t *testing.T) {
	p := NewParser("test")
	v, _ := NewBool("v").Register(p)
	s, _ := NewInt("s").Register(p)

	err := p.Parse([]string{"/v", "/s", "10"})
	assert.Nil(t, err)
	assert.True(t, v.IsSet())
	assert.Equal(t, 10, s.ValueOr(0))
}

func TestParseDoubleHyphenEndsOptionProcessing(t *testing.T) {
	p := NewParser("test")
	a, _ := NewBool("a").Register(p)
	b, _ := NewBool("b").Register(p)

	err := p.Parse([]string{"-a", "--", "-b"})
	assert.Nil(t, err)
	assert.True(t, a.IsSet())
	assert.False(t, b.IsSet())
	assert.Equal(t, []string{"-b"}, p.NonOptionArgs())
}

func TestParseSolitaryHyphenIsNonOption(t *testing.T) {
	p := NewParser("test")
	a, _ := NewBool("a").Register(p)

	err := p.Parse([]string{"-", "-a"})
	assert.Nil(t, err)
	assert.True(t, a.IsSet())
	assert.Equal(t, []string{"-"}, p.NonOptionArgs())
	assert.True(t, p.SolitaryHyphen())
}

func TestParseOrphanArgumentsCollectedInOrder(t *testing.T) {
	p := NewParser("test")
	_, err := NewBool("a").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"first", "-a", "second", "--", "-a", "third"})
	assert.Nil(t, err)
	assert.Equal(t, []string{"first", "second", "-a", "third"}, p.NonOptionArgs())
}

func TestParseFlagsThenValueCombined(t *testing.T) {
	p := NewParser("test")
	a, _ := NewBool("a").Register(p)
	b, _ := NewBool("b").Register(p)
	c, _ := NewBool("c").Register(p)
	s, _ := NewInt("s").Register(p)

	err := p.Parse([]string{"-abcs10"})
	assert.Nil(t, err)
	assert.True(t, a.IsSet())
	assert.True(t, b.IsSet())
	assert.True(t, c.IsSet())
	assert.Equal(t, 10, s.ValueOr(0))
}

func TestParseFlagsThenValueWithDelimiter(t *testing.T) {
	p := NewParser("test")
	v, _ := NewBool("v").Register(p)
	s, _ := NewString("s").Register(p)

	err := p.Parse([]string{"-vs=out.txt"})
	assert.Nil(t, err)
	assert.True(t, v.IsSet())
	assert.Equal(t, "out.txt", s.ValueOr(""))
}

func TestParseMixedScenario(t *testing.T) {
	p := NewParser("test")
	w, _ := NewInt("w").SetLong("width").SetMandatory(true).Register(p)
	v, _ := NewBool("v").SetAllowMany(true).Register(p)

	err := p.Parse([]string{"-w", "5", "-vv", "extra"})
	assert.Nil(t, err)
	assert.Equal(t, 5, w.ValueOr(0))
	assert.Equal(t, 2, v.Count())
	assert.Equal(t, []string{"extra"}, p.NonOptionArgs())
}

func TestParseUnknownLongOption(t *testing.T) {
	p := NewParser("test")
	_, err := NewBool("a").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"--bogus"})
	assert.True(t, errors.Is(err, ErrUnknownOption))

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "bogus", perr.OptionName())
}

func TestParseUnknownShortOption(t *testing.T) {
	p := NewParser("test")
	_, err := NewBool("a").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"-z"})
	assert.True(t, errors.Is(err, ErrUnknownOption))
}

func TestParseValueMissingAtEnd(t *testing.T) {
	p := NewParser("test")
	_, err := NewInt("s").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"-s"})
	assert.True(t, errors.Is(err, ErrIllegalValue))
}

func TestParseMandatoryOptionMissing(t *testing.T) {
	p := NewParser("test")
	_, err := NewInt("w").SetLong("width").SetMandatory(true).Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{})
	assert.True(t, errors.Is(err, ErrIllegalValue))

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "-w,--width", perr.OptionName())
}

func TestParseSingleValueOptionGivenTwice(t *testing.T) {
	p := NewParser("test")
	_, err := NewInt("s").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"-s", "1", "-s", "2"})
	assert.True(t, errors.Is(err, ErrDuplicateValue))
}

func TestParseRepeatableValueOption(t *testing.T) {
	p := NewParser("test")
	f, _ := NewString("f").SetAllowMany(true).Register(p)

	err := p.Parse([]string{"-f", "a", "-f=b", "-fc"})
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, f.Values())
}

func TestParseOccurrenceBounds(t *testing.T) {
	p := NewParser("test")
	f, _ := NewString("f").Register(p)
	err := f.SetMinMaxCounts(2, 3)
	assert.Nil(t, err)

	err = p.Parse([]string{"-f", "a"})
	assert.True(t, errors.Is(err, ErrInvalidCount))

	err = p.Parse([]string{"-f", "a", "-f", "b"})
	assert.Nil(t, err)
	assert.Equal(t, 2, f.Count())

	err = p.Parse([]string{"-f", "a", "-f", "b", "-f", "c", "-f", "d"})
	assert.True(t, errors.Is(err, ErrValueLimit))
}

func TestParseFlagRejectsAttachedValue(t *testing.T) {
	p := NewParser("test")
	_, err := NewBool("v").Register(p)
	assert.Nil(t, err)

	err = p.Parse([]string{"-v=false"})
	assert.True(t, errors.Is(err, ErrIllegalValue))
}

func TestParseRepeatableFlagAcceptsAttachedBoolValue(t *testing.T) {
	p := NewParser("test")
	v, _ := NewBool("v").SetAllowMany(true).Register(p)

	err := p.Parse([]string{"-v", "-v=false", "-v:yes"})
	assert.Nil(t, err)
	assert.Equal(t, []bool{true, false, true}, v.Values())
}

func TestParseTokenWithWhitespaceIsNonOption(t *testing.T) {
	// Attached values cannot contain whitespace, so a padded token matches no
	// option rule and falls through to the non-option list.
	p := NewParser("test")
	v, _ := NewBool("v").SetAllowMany(true).Register(p)

	err := p.Parse([]string{"-v= on "})
	assert.Nil(t, err)
	assert.Equal(t, 0, v.Count())
	assert.Equal(t, []string{"-v= on "}, p.NonOptionArgs())
}

func TestParseFlagDoesNotConsumeNextArgument(t *testing.T) {
	p := NewParser("test")
	v, _ := NewBool("v").Register(p)

	err := p.Parse([]string{"-v", "true"})
	assert.Nil(t, err)
	assert.True(t, v.IsSet())
	assert.Equal(t, []string{"true"}, p.NonOptionArgs())
}

func TestParseClearsStateBetweenRuns(t *testing.T) {
	p := NewParser("test")
	s, _ := NewInt("s").Register(p)

	assert.Nil(t, p.Parse([]string{"-s", "1", "left"}))
	assert.Equal(t, []int{1}, s.Values())
	assert.Equal(t, []string{"left"}, p.NonOptionArgs())

	assert.Nil(t, p.Parse([]string{"-s", "2"}))
	assert.Equal(t, []int{2}, s.Values())
	assert.Empty(t, p.NonOptionArgs())
}

func TestParseValuesBeforeFailureRemainRecorded(t *testing.T) {
	p := NewParser("test")
	s, _ := NewString("s").SetAllowMany(true).Register(p)

	err := p.Parse([]string{"-s", "kept", "--bogus"})
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Equal(t, []string{"kept"}, s.Values())
}

func TestParseQuestionMarkShortName(t *testing.T) {
	p := NewParser("test")
	h, _ := NewBool("?").Register(p)

	err := p.Parse([]string{"-?"})
	assert.Nil(t, err)
	assert.True(t, h.IsSet())
}

func TestParseOrExitPrintsErrorAndUsage(t *testing.T) {
	p := NewParser("test")
	_, err := NewInt("w").SetLong("width").SetMandatory(true).Register(p)
	assert.Nil(t, err)

	var stderr bytes.Buffer
	SetStderrWriter(&stderr)
	defer SetStderrWriter(os.Stderr)

	var exitCode int
	exitCalled := false
	SetExitFunc(func(code int) {
		exitCode = code
		exitCalled = true
	})
	defer SetExitFunc(os.Exit)

	t.Setenv("CLAP_COLOR", "never")
	p.ParseOrExit([]string{})
	assert.True(t, exitCalled)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "-w,--width")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestParseOrExitSucceedsSilently(t *testing.T) {
	p := NewParser("test")
	v, _ := NewBool("v").Register(p)

	var stderr bytes.Buffer
	SetStderrWriter(&stderr)
	defer SetStderrWriter(os.Stderr)

	exitCalled := false
	SetExitFunc(func(int) { exitCalled = true })
	defer SetExitFunc(os.Exit)

	p.ParseOrExit([]string{"-v"})
	assert.False(t, exitCalled)
	assert.True(t, v.IsSet())
	assert.Empty(t, stderr.String())
}
