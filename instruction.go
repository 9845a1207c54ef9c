package sixtyfive

// Instruction describes one (mnemonic, addressing mode) encoding: the
// opcode byte the first pass selects and the total length in bytes
// (opcode + operand) the layout pass advances the program counter by.
type Instruction struct {
	Mnemonic string
	Mode     Mode
	Opcode   byte
	Length   byte
}

// table enumerates every legal (mnemonic, mode) pair in the documented NMOS
// 6502 instruction set. It is intentionally a flat, hand-enumerated table
// (mirroring the "aaa bbb cc" structure described in spec.md §4.3) rather
// than per-mnemonic code, so that adding or auditing an addressing mode is
// a one-line change.
var table = []Instruction{
	// cc=01 group: ORA, AND, EOR, ADC, STA, LDA, CMP, SBC
	{"ORA", IDX, 0x01, 2}, {"ORA", ZPG, 0x05, 2}, {"ORA", IMM, 0x09, 2},
	{"ORA", ABS, 0x0D, 3}, {"ORA", IDY, 0x11, 2}, {"ORA", ZPX, 0x15, 2},
	{"ORA", ABY, 0x19, 3}, {"ORA", ABX, 0x1D, 3},

	{"AND", IDX, 0x21, 2}, {"AND", ZPG, 0x25, 2}, {"AND", IMM, 0x29, 2},
	{"AND", ABS, 0x2D, 3}, {"AND", IDY, 0x31, 2}, {"AND", ZPX, 0x35, 2},
	{"AND", ABY, 0x39, 3}, {"AND", ABX, 0x3D, 3},

	{"EOR", IDX, 0x41, 2}, {"EOR", ZPG, 0x45, 2}, {"EOR", IMM, 0x49, 2},
	{"EOR", ABS, 0x4D, 3}, {"EOR", IDY, 0x51, 2}, {"EOR", ZPX, 0x55, 2},
	{"EOR", ABY, 0x59, 3}, {"EOR", ABX, 0x5D, 3},

	{"ADC", IDX, 0x61, 2}, {"ADC", ZPG, 0x65, 2}, {"ADC", IMM, 0x69, 2},
	{"ADC", ABS, 0x6D, 3}, {"ADC", IDY, 0x71, 2}, {"ADC", ZPX, 0x75, 2},
	{"ADC", ABY, 0x79, 3}, {"ADC", ABX, 0x7D, 3},

	{"STA", IDX, 0x81, 2}, {"STA", ZPG, 0x85, 2},
	{"STA", ABS, 0x8D, 3}, {"STA", IDY, 0x91, 2}, {"STA", ZPX, 0x95, 2},
	{"STA", ABY, 0x99, 3}, {"STA", ABX, 0x9D, 3},

	{"LDA", IDX, 0xA1, 2}, {"LDA", ZPG, 0xA5, 2}, {"LDA", IMM, 0xA9, 2},
	{"LDA", ABS, 0xAD, 3}, {"LDA", IDY, 0xB1, 2}, {"LDA", ZPX, 0xB5, 2},
	{"LDA", ABY, 0xB9, 3}, {"LDA", ABX, 0xBD, 3},

	{"CMP", IDX, 0xC1, 2}, {"CMP", ZPG, 0xC5, 2}, {"CMP", IMM, 0xC9, 2},
	{"CMP", ABS, 0xCD, 3}, {"CMP", IDY, 0xD1, 2}, {"CMP", ZPX, 0xD5, 2},
	{"CMP", ABY, 0xD9, 3}, {"CMP", ABX, 0xDD, 3},

	{"SBC", IDX, 0xE1, 2}, {"SBC", ZPG, 0xE5, 2}, {"SBC", IMM, 0xE9, 2},
	{"SBC", ABS, 0xED, 3}, {"SBC", IDY, 0xF1, 2}, {"SBC", ZPX, 0xF5, 2},
	{"SBC", ABY, 0xF9, 3}, {"SBC", ABX, 0xFD, 3},

	// cc=10 group: ASL, ROL, LSR, ROR, STX, LDX, DEC, INC
	{"ASL", ZPG, 0x06, 2}, {"ASL", IMP, 0x0A, 1}, {"ASL", ABS, 0x0E, 3},
	{"ASL", ZPX, 0x16, 2}, {"ASL", ABX, 0x1E, 3},

	{"ROL", ZPG, 0x26, 2}, {"ROL", IMP, 0x2A, 1}, {"ROL", ABS, 0x2E, 3},
	{"ROL", ZPX, 0x36, 2}, {"ROL", ABX, 0x3E, 3},

	{"LSR", ZPG, 0x46, 2}, {"LSR", IMP, 0x4A, 1}, {"LSR", ABS, 0x4E, 3},
	{"LSR", ZPX, 0x56, 2}, {"LSR", ABX, 0x5E, 3},

	{"ROR", ZPG, 0x66, 2}, {"ROR", IMP, 0x6A, 1}, {"ROR", ABS, 0x6E, 3},
	{"ROR", ZPX, 0x76, 2}, {"ROR", ABX, 0x7E, 3},

	{"STX", ZPG, 0x86, 2}, {"STX", ZPY, 0x96, 2}, {"STX", ABS, 0x8E, 3},

	{"LDX", IMM, 0xA2, 2}, {"LDX", ZPG, 0xA6, 2}, {"LDX", ZPY, 0xB6, 2},
	{"LDX", ABS, 0xAE, 3}, {"LDX", ABY, 0xBE, 3},

	{"DEC", ZPG, 0xC6, 2}, {"DEC", ABS, 0xCE, 3}, {"DEC", ZPX, 0xD6, 2},
	{"DEC", ABX, 0xDE, 3},

	{"INC", ZPG, 0xE6, 2}, {"INC", ABS, 0xEE, 3}, {"INC", ZPX, 0xF6, 2},
	{"INC", ABX, 0xFE, 3},

	// cc=00 group: STY, LDY, CPY, CPX, BIT
	{"STY", ZPG, 0x84, 2}, {"STY", ABS, 0x8C, 3}, {"STY", ZPX, 0x94, 2},

	{"LDY", IMM, 0xA0, 2}, {"LDY", ZPG, 0xA4, 2}, {"LDY", ABS, 0xAC, 3},
	{"LDY", ZPX, 0xB4, 2}, {"LDY", ABX, 0xBC, 3},

	{"CPY", IMM, 0xC0, 2}, {"CPY", ZPG, 0xC4, 2}, {"CPY", ABS, 0xCC, 3},

	{"CPX", IMM, 0xE0, 2}, {"CPX", ZPG, 0xE4, 2}, {"CPX", ABS, 0xEC, 3},

	{"BIT", ZPG, 0x24, 2}, {"BIT", ABS, 0x2C, 3},

	// Jumps and calls.
	{"JMP", ABS, 0x4C, 3}, {"JMP", IND, 0x6C, 3}, {"JSR", ABS, 0x20, 3},

	// BRK: reserved as a 2-byte instruction; the signature byte is always 0.
	{"BRK", IMP, 0x00, 2},

	// Branches. Operand is always a label reference, resolved in pass 2.
	{"BPL", REL, 0x10, 2}, {"BMI", REL, 0x30, 2}, {"BVC", REL, 0x50, 2},
	{"BVS", REL, 0x70, 2}, {"BCC", REL, 0x90, 2}, {"BCS", REL, 0xB0, 2},
	{"BNE", REL, 0xD0, 2}, {"BEQ", REL, 0xF0, 2},

	// Single-byte implicit instructions.
	{"RTI", IMP, 0x40, 1}, {"RTS", IMP, 0x60, 1},
	{"PHP", IMP, 0x08, 1}, {"PLP", IMP, 0x28, 1},
	{"PHA", IMP, 0x48, 1}, {"PLA", IMP, 0x68, 1},
	{"CLC", IMP, 0x18, 1}, {"SEC", IMP, 0x38, 1},
	{"CLI", IMP, 0x58, 1}, {"SEI", IMP, 0x78, 1},
	{"CLV", IMP, 0xB8, 1}, {"CLD", IMP, 0xD8, 1}, {"SED", IMP, 0xF8, 1},
	{"INX", IMP, 0xE8, 1}, {"DEX", IMP, 0xCA, 1},
	{"INY", IMP, 0xC8, 1}, {"DEY", IMP, 0x88, 1},
	{"TAX", IMP, 0xAA, 1}, {"TXA", IMP, 0x8A, 1},
	{"TAY", IMP, 0xA8, 1}, {"TYA", IMP, 0x98, 1},
	{"TSX", IMP, 0xBA, 1}, {"TXS", IMP, 0x9A, 1},
}

// byMnemonic indexes the table by upper-cased mnemonic for fast lookup.
var byMnemonic = func() map[string][]Instruction {
	m := make(map[string][]Instruction, 64)
	for _, inst := range table {
		m[inst.Mnemonic] = append(m[inst.Mnemonic], inst)
	}
	return m
}()

// Lookup returns every addressing-mode variant of mnemonic (matched
// case-insensitively by the caller, which is expected to upper-case it
// first), or nil if the mnemonic is unknown.
func Lookup(mnemonic string) []Instruction {
	return byMnemonic[mnemonic]
}

// Find returns the instruction encoding mnemonic with the given addressing
// mode, or false if that combination is not legal.
func Find(mnemonic string, mode Mode) (Instruction, bool) {
	for _, inst := range byMnemonic[mnemonic] {
		if inst.Mode == mode {
			return inst, true
		}
	}
	return Instruction{}, false
}
