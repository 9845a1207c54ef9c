package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStringOmitsLineWhenZero(t *testing.T) {
	e := newError("a.s", 0, 0, "boom")
	assert.Equal(t, "a.s: boom", e.Error())
}

func TestErrorStringIncludesLine(t *testing.T) {
	e := newError("a.s", 3, 5, "boom")
	assert.Equal(t, "a.s:3: boom", e.Error())
}

func TestErrorDetailEmptyWithoutSourceLine(t *testing.T) {
	e := newError("a.s", 3, 5, "boom")
	assert.Equal(t, "", e.Detail())
}

func TestErrorDetailCaretUnderColumn(t *testing.T) {
	e := newError("a.s", 1, 4, "bad token")
	e.SourceLine = "LDA #$FF"
	assert.Equal(t, "LDA #$FF\n    ^", e.Detail())
}

func TestSourceLineText(t *testing.T) {
	src := "one\ntwo\nthree"
	assert.Equal(t, "one", sourceLineText(src, 1))
	assert.Equal(t, "two", sourceLineText(src, 2))
	assert.Equal(t, "three", sourceLineText(src, 3))
	assert.Equal(t, "", sourceLineText(src, 0))
	assert.Equal(t, "", sourceLineText(src, 4))
}
