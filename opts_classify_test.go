package opts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPlainTokens(t *testing.T) {
	for _, arg := range []string{"", "value", "file.txt", "-", "a-b", "1234"} {
		tok := classify(arg)
		assert.Equal(t, tokenPlain, tok.kind, "arg %q", arg)
	}
}

func TestClassifyDashDash(t *testing.T) {
	assert.Equal(t, tokenDashDash, classify("--").kind)
}

func TestClassifyLongNames(t *testing.T) {
	tok := classify("--debug")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "debug", tok.name)
	assert.False(t, tok.hasValue)

	tok = classify("--output=file.txt")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "output", tok.name)
	assert.Equal(t, "file.txt", tok.value)
	assert.True(t, tok.hasValue)

	// Empty inline value is still an inline value.
	tok = classify("--output=")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "", tok.value)
	assert.True(t, tok.hasValue)

	// The value is verbatim: '=' and spaces survive.
	tok = classify("--expr=a=b c")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "expr", tok.name)
	assert.Equal(t, "a=b c", tok.value)

	tok = classify("--dry-run")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "dry-run", tok.name)

	tok = classify("--log_level=info")
	assert.Equal(t, tokenLong, tok.kind)
	assert.Equal(t, "log_level", tok.name)
}

func TestClassifyShortClusters(t *testing.T) {
	tok := classify("-v")
	assert.Equal(t, tokenShort, tok.kind)
	assert.Equal(t, "v", tok.name)

	tok = classify("-abc")
	assert.Equal(t, tokenShort, tok.kind)
	assert.Equal(t, "abc", tok.name)

	// '?' is a legal short name only on its own.
	assert.Equal(t, tokenShort, classify("-?").kind)
	assert.Equal(t, tokenMalformed, classify("-a?").kind)
}

func TestClassifyMalformed(t *testing.T) {
	for _, arg := range []string{"--x", "---triple", "--=value", "--bad name", "-a=b", "-!", "--_leading"} {
		assert.Equal(t, tokenMalformed, classify(arg).kind, "arg %q", arg)
	}
}
