package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjointRanges(t *testing.T) {
	a := newImage("a.s")
	require.NoError(t, a.write("a.s", 0x0000, []byte{1, 2}, 1))

	b := newImage("b.s")
	require.NoError(t, b.write("b.s", 0x0010, []byte{3, 4}, 1))

	require.NoError(t, Merge(a, b))
	assert.Equal(t, uint16(0x0000), a.Start)
	assert.Equal(t, uint16(0x0011), a.End)
	assert.Equal(t, byte(3), a.Bytes[0x0010])
}

func TestMergeOverlappingRangesFail(t *testing.T) {
	a := newImage("a.s")
	require.NoError(t, a.write("a.s", 0x0000, []byte{1, 2, 3}, 1))

	b := newImage("b.s")
	require.NoError(t, b.write("b.s", 0x0002, []byte{9}, 1))

	err := Merge(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "possible overwriting")
}

func TestMergeEmptySourceIsNoop(t *testing.T) {
	a := newImage("a.s")
	require.NoError(t, a.write("a.s", 0x0000, []byte{1}, 1))

	b := newImage("b.s")

	require.NoError(t, Merge(a, b))
	assert.Equal(t, uint16(0x0000), a.Start)
	assert.Equal(t, uint16(0x0000), a.End)
}

func TestMergeIntoEmptyDest(t *testing.T) {
	a := newImage("a.s")
	b := newImage("b.s")
	require.NoError(t, b.write("b.s", 0x0005, []byte{7, 8}, 1))

	require.NoError(t, Merge(a, b))
	assert.Equal(t, uint16(0x0005), a.Start)
	assert.Equal(t, uint16(0x0006), a.End)
}
