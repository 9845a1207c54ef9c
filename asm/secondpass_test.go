package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemble(t *testing.T, src string) *Image {
	t.Helper()
	lines := parseAll(t, src)
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	img, err := SecondPass(fp, newTracer(nil))
	require.NoError(t, err)
	return img
}

func TestSecondPassBranchExample(t *testing.T) {
	img := assemble(t, "start: LDA #$00\nBEQ start\n")
	assert.Equal(t, uint16(0), img.Start)
	assert.Equal(t, uint16(3), img.End)
	assert.Equal(t, []byte{0xA9, 0x00, 0xF0, 0xFC}, img.Bytes[0:4])
}

func TestSecondPassEmptyImage(t *testing.T) {
	lines := parseAll(t, ".define foo $10\n")
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	img, err := SecondPass(fp, newTracer(nil))
	require.NoError(t, err)
	assert.True(t, img.Empty())
}

func TestSecondPassOverwriteDetected(t *testing.T) {
	lines := parseAll(t, ".origin $0000\nLDA #$01\n.origin $0000\nLDA #$02\n")
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	_, err = SecondPass(fp, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already written")
}

func TestSecondPassUndeclaredLabel(t *testing.T) {
	lines := parseAll(t, "LDA #<missing\n")
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	_, err = SecondPass(fp, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undeclared label")
}

func TestSecondPassByteLabelOverflow(t *testing.T) {
	lines := parseAll(t, ".origin $0200\nbig: RTS\nLDA (big,X)\n")
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	_, err = SecondPass(fp, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected byte, found word")
}

func TestSecondPassBranchTooFar(t *testing.T) {
	src := "start: BEQ target\n.bytes "
	for i := 0; i < 200; i++ {
		src += "1, "
	}
	src += "1\ntarget: RTS\n"
	lines := parseAll(t, src)
	fp, err := FirstPass("test.s", lines, newTracer(nil))
	require.NoError(t, err)
	_, err = SecondPass(fp, newTracer(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too far away")
}

func TestSecondPassWordLabelDeferredResolves(t *testing.T) {
	img := assemble(t, ".word target\ntarget: RTS\n")
	assert.Equal(t, byte(0x02), img.Bytes[0])
	assert.Equal(t, byte(0x00), img.Bytes[1])
	assert.Equal(t, byte(0x60), img.Bytes[2])
}
