package clap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileRulesPartitions(t *testing.T) {
	opts := []option{NewBool("a"), NewBool("b"), NewInt("s")}
	rs := compileRules(opts)

	assert.NotNil(t, rs.flagCluster)
	assert.NotNil(t, rs.flagsThenValue)
	assert.True(t, rs.flagCluster.MatchString("-ab"))
	assert.False(t, rs.flagCluster.MatchString("-as"))
	assert.True(t, rs.flagsThenValue.MatchString("-abs10"))
	assert.False(t, rs.flagsThenValue.MatchString("-abs"))
}

func TestCompileRulesNoFlags(t *testing.T) {
	rs := compileRules([]option{NewInt("s")})
	assert.Nil(t, rs.flagCluster)
	assert.Nil(t, rs.flagsThenValue)
	assert.NotNil(t, rs.shortOpt)
	assert.NotNil(t, rs.longOpt)
}

func TestCompileRulesNoValueOptions(t *testing.T) {
	rs := compileRules([]option{NewBool("a")})
	assert.NotNil(t, rs.flagCluster)
	assert.Nil(t, rs.flagsThenValue)
}

func TestCompileRulesEmptyRegistry(t *testing.T) {
	rs := compileRules(nil)
	assert.Nil(t, rs.flagCluster)
	assert.Nil(t, rs.flagsThenValue)
	assert.True(t, rs.shortOpt.MatchString("-x"))
}

func TestCompileRulesEscapesMetaShortNames(t *testing.T) {
	rs := compileRules([]option{NewBool("?"), NewBool("a")})
	assert.True(t, rs.flagCluster.MatchString("-?"))
	assert.True(t, rs.flagCluster.MatchString("-a?"))
	assert.False(t, rs.flagCluster.MatchString("-b"))
}

func TestLongOptRuleCaptures(t *testing.T) {
	rs := compileRules(nil)

	m := rs.longOpt.FindStringSubmatch("--size=10")
	assert.Equal(t, []string{"--size=10", "size", "10"}, m)

	m = rs.longOpt.FindStringSubmatch("--size:10")
	assert.Equal(t, "10", m[2])

	m = rs.longOpt.FindStringSubmatch("--size")
	assert.Equal(t, "size", m[1])
	assert.Equal(t, "", m[2])

	assert.Nil(t, rs.longOpt.FindStringSubmatch("--x"))
	assert.Nil(t, rs.longOpt.FindStringSubmatch("-size"))
}

func TestShortOptRuleCaptures(t *testing.T) {
	rs := compileRules(nil)

	m := rs.shortOpt.FindStringSubmatch("-s10")
	assert.Equal(t, "s", m[1])
	assert.Equal(t, "10", m[2])

	m = rs.shortOpt.FindStringSubmatch("/s:10")
	assert.Equal(t, "10", m[2])

	m = rs.shortOpt.FindStringSubmatch("-s")
	assert.Equal(t, "", m[2])
}

func TestNameGrammar(t *testing.T) {
	assert.True(t, shortNameRe.MatchString("a"))
	assert.True(t, shortNameRe.MatchString("Z"))
	assert.True(t, shortNameRe.MatchString("0"))
	assert.True(t, shortNameRe.MatchString("?"))
	assert.True(t, shortNameRe.MatchString("@"))
	assert.False(t, shortNameRe.MatchString("-"))
	assert.False(t, shortNameRe.MatchString("ab"))

	assert.True(t, longNameRe.MatchString("ab"))
	assert.True(t, longNameRe.MatchString("dry-run"))
	assert.False(t, longNameRe.MatchString("a"))
	assert.False(t, longNameRe.MatchString("bad-"))
	assert.False(t, longNameRe.MatchString("-bad"))
}
