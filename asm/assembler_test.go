package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleEndToEnd(t *testing.T) {
	img, err := Assemble("prog.s", "start: LDA #$00\nBEQ start\n", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA9, 0x00, 0xF0, 0xFC}, img.Bytes[0:4])
}

func TestAssembleStopsAtFirstError(t *testing.T) {
	_, err := Assemble("prog.s", "FROB\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prog.s")
}

func TestAssembleParseErrorSurfacesBeforePasses(t *testing.T) {
	_, err := Assemble("prog.s", ".frobnicate\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid pragma")
}

func TestAssembleAnnotatesSourceLineForCaret(t *testing.T) {
	_, err := Assemble("prog.s", "LDA #$100\n", nil)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "LDA #$100", ae.SourceLine)
	assert.NotEmpty(t, ae.Detail())
}

func TestAssembleAnnotatesFirstPassErrorLine(t *testing.T) {
	_, err := Assemble("prog.s", "FROB\n", nil)
	require.Error(t, err)

	ae, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "FROB", ae.SourceLine)
}
