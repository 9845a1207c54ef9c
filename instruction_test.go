package sixtyfive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindKnownOpcodes(t *testing.T) {
	cases := []struct {
		mnemonic string
		mode     Mode
		opcode   byte
		length   byte
	}{
		{"LDA", IMM, 0xA9, 2},
		{"LDA", ZPG, 0xA5, 2},
		{"LDA", ABS, 0xAD, 3},
		{"STA", ZPG, 0x85, 2},
		{"ASL", IMP, 0x0A, 1},
		{"JMP", ABS, 0x4C, 3},
		{"JMP", IND, 0x6C, 3},
		{"JSR", ABS, 0x20, 3},
		{"BRK", IMP, 0x00, 2},
		{"BEQ", REL, 0xF0, 2},
	}

	for _, c := range cases {
		inst, ok := Find(c.mnemonic, c.mode)
		assert.Truef(t, ok, "%s/%s should be a legal combination", c.mnemonic, c.mode)
		assert.Equal(t, c.opcode, inst.Opcode)
		assert.Equal(t, c.length, inst.Length)
	}
}

func TestStaRejectsImmediate(t *testing.T) {
	_, ok := Find("STA", IMM)
	assert.False(t, ok, "STA #imm is not a legal 6502 addressing mode")
}

func TestUnknownMnemonic(t *testing.T) {
	assert.Nil(t, Lookup("FROB"))
}
