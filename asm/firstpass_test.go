package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstPass(t *testing.T, src string) *FirstPassResult {
	t.Helper()
	lines := parseAll(t, src)
	res, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	return res
}

func TestFirstPassBranchExample(t *testing.T) {
	res := firstPass(t, "start: LDA #$00\nBEQ start\n")
	require.Len(t, res.Lines, 2)

	assert.Equal(t, uint16(0), res.Symbols["start"])

	assert.Equal(t, uint16(0), res.Lines[0].LoadAddr)
	assert.Equal(t, 2, res.Lines[0].Length)
	assert.Equal(t, byte(0xA9), res.Lines[0].OpcodeByte)
	assert.Equal(t, ArgByte, res.Lines[0].Operand.Kind)
	assert.Equal(t, byte(0x00), res.Lines[0].Operand.Byte)

	assert.Equal(t, uint16(2), res.Lines[1].LoadAddr)
	assert.Equal(t, 2, res.Lines[1].Length)
	assert.Equal(t, byte(0xF0), res.Lines[1].OpcodeByte)
	assert.Equal(t, ArgRelativeLabel, res.Lines[1].Operand.Kind)
	assert.Equal(t, "start", res.Lines[1].Operand.Label)
}

func TestFirstPassDuplicateLabel(t *testing.T) {
	lines := parseAll(t, "foo: RTS\nfoo: RTS\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foo")
}

func TestFirstPassOrigin(t *testing.T) {
	res := firstPass(t, ".origin $0200\nRTS\n")
	require.Len(t, res.Lines, 1)
	assert.Equal(t, uint16(0x0200), res.Lines[0].LoadAddr)
}

func TestFirstPassOriginUndeclaredLabel(t *testing.T) {
	lines := parseAll(t, ".origin foo\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared label")
}

func TestFirstPassDefine(t *testing.T) {
	res := firstPass(t, ".define foo $1234\nLDA #<foo\n")
	assert.Equal(t, uint16(0x1234), res.Symbols["foo"])
	require.Len(t, res.Lines, 1)
	assert.Equal(t, ArgByteLabelLow, res.Lines[0].Operand.Kind)
}

func TestFirstPassDefineForwardReferenceFails(t *testing.T) {
	lines := parseAll(t, ".define foo bar\nbar: RTS\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared label")
}

func TestFirstPassPragmaBytes(t *testing.T) {
	res := firstPass(t, ".byte 1\n.bytes 2, 3\n.word $0102\n")
	require.Len(t, res.Lines, 3)

	assert.Equal(t, uint16(0), res.Lines[0].LoadAddr)
	assert.True(t, res.Lines[0].IsData)
	assert.Equal(t, []byte{1}, res.Lines[0].Data)

	assert.Equal(t, uint16(1), res.Lines[1].LoadAddr)
	assert.Equal(t, []byte{2, 3}, res.Lines[1].Data)

	assert.Equal(t, uint16(3), res.Lines[2].LoadAddr)
	assert.Equal(t, []byte{0x02, 0x01}, res.Lines[2].Data)
}

func TestFirstPassWordLabelDeferred(t *testing.T) {
	res := firstPass(t, ".word target\ntarget: RTS\n")
	require.Len(t, res.Lines, 2)
	assert.True(t, res.Lines[0].IsData)
	assert.Equal(t, ArgWordLabel, res.Lines[0].Operand.Kind)
	assert.Equal(t, "target", res.Lines[0].Operand.Label)
}

func TestFirstPassInvalidOpcode(t *testing.T) {
	lines := parseAll(t, "FROB\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid opcode 'FROB'")
}

func TestFirstPassInvalidAddressingMode(t *testing.T) {
	lines := parseAll(t, "STA #$01\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid argument for opcode 'STA'")
}

func TestFirstPassBranchRequiresLabel(t *testing.T) {
	lines := parseAll(t, "BEQ $1000\n")
	_, err := FirstPass("test.s", lines, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid argument for opcode 'BEQ'")
}

func TestFirstPassJmpIndirect(t *testing.T) {
	res := firstPass(t, "JMP ($1000)\n")
	require.Len(t, res.Lines, 1)
	assert.Equal(t, byte(0x6C), res.Lines[0].OpcodeByte)
	assert.Equal(t, ArgWord, res.Lines[0].Operand.Kind)
	assert.Equal(t, uint16(0x1000), res.Lines[0].Operand.Word)
}

func TestFirstPassBrkIsTwoBytes(t *testing.T) {
	res := firstPass(t, "BRK\nRTS\n")
	require.Len(t, res.Lines, 2)
	assert.Equal(t, 2, res.Lines[0].Length)
	assert.Equal(t, uint16(2), res.Lines[1].LoadAddr)
}
