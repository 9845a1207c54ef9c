// Package sixtyfive describes the MOS 6502 instruction set: the addressing
// modes an operand may use and the table mapping a mnemonic and addressing
// mode to its opcode byte and instruction length.
package sixtyfive

// Mode identifies a 6502 addressing mode.
type Mode byte

// All addressing modes supported by the assembler.
const (
	IMP Mode = iota // Implicit (no operand)
	IMM             // Immediate: #$nn
	ZPG             // Zero page: $nn
	ZPX             // Zero page,X: $nn,X
	ZPY             // Zero page,Y: $nn,Y
	ABS             // Absolute: $nnnn
	ABX             // Absolute,X: $nnnn,X
	ABY             // Absolute,Y: $nnnn,Y
	IDX             // (Indirect,X): ($nn,X)
	IDY             // (Indirect),Y: ($nn),Y
	IND             // (Indirect): ($nnnn)
	REL             // Relative branch target
)

var modeNames = [...]string{
	IMP: "IMP", IMM: "IMM", ZPG: "ZPG", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY", IDX: "IDX", IDY: "IDY",
	IND: "IND", REL: "REL",
}

// String returns the conventional three-letter name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}
