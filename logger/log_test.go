package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	out := render("reduce %d/%d", 2, 4)
	assert.Contains(out, "reduce")

	err := SetFilter("compare")
	assert.Nil(err)
	out = render("reduce %d/%d", 2, 4)
	assert.Equal("", out)
	out = render("Compare %d/%d", 2, 4)
	assert.Equal("", out)
	out = render("compare %d/%d", 2, 4)
	assert.Contains(out, "compare")

	err = SetFilter("(?i)compare")
	assert.Nil(err)
	out = render("Compare %d/%d", 2, 4)
	assert.Contains(out, "Compare")

	err = SetFilter("(?i)reduce|compare")
	assert.Nil(err)
	out = render("reduce %d/%d", 2, 4)
	assert.Contains(out, "reduce")
	out = render("encode %d/%d", 2, 4)
	assert.Equal("", out)

	err = SetFilter("(")
	assert.NotNil(err)

	err = SetFilter("")
	assert.Nil(err)
	out = render("encode %d/%d", 2, 4)
	assert.Contains(out, "encode")

	line := render("hello %d", time.Now().UnixNano())
	assert.False(exhausted(line))

	SetLimiter(2)
	assert.False(exhausted(line))
	assert.False(exhausted(line))
	assert.True(exhausted(line))
	assert.True(exhausted(line))
	SetLimiter(0)
	assert.False(exhausted(line))
}
