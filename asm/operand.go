package asm

import "github.com/mricon/sixtyfive"

// AddressOperand is either a literal 16-bit address or a label reference
// to be resolved later.
type AddressOperand struct {
	IsLabel bool
	Literal uint16
	Label   string
}

// ImmKind distinguishes the four forms an immediate operand may take.
type ImmKind byte

const (
	ImmLiteral  ImmKind = iota // a literal byte value
	ImmLabel                   // the full 8-bit value of a resolved label
	ImmLowByte                 // <label: low 8 bits of a resolved 16-bit label
	ImmHighByte                // >label: high 8 bits of a resolved 16-bit label
)

// ImmediateOperand is the operand of an Immediate-mode instruction.
type ImmediateOperand struct {
	Kind    ImmKind
	Literal byte
	Label   string
}

// ModeKind enumerates the addressing-mode shapes the parser can produce.
// It mirrors sixtyfive.Mode but, per spec.md's data model, carries its
// operand payload inline rather than being a bare enum.
type ModeKind byte

const (
	ModeImplicit ModeKind = iota
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
)

// AddressingMode is the parsed operand of an instruction line: one of the
// eleven shapes above, carrying whichever operand payload applies.
type AddressingMode struct {
	Kind ModeKind
	Addr AddressOperand    // ZeroPage*, Absolute*, Indirect*
	Imm  ImmediateOperand  // Immediate only
}

// Base returns the plain sixtyfive.Mode this addressing mode encodes to,
// for opcode table lookups. Branch targets are handled separately by the
// first pass (they always parse as ModeAbsolute but encode as REL).
func (m ModeKind) Base() sixtyfive.Mode {
	switch m {
	case ModeImplicit:
		return sixtyfive.IMP
	case ModeImmediate:
		return sixtyfive.IMM
	case ModeZeroPage:
		return sixtyfive.ZPG
	case ModeZeroPageX:
		return sixtyfive.ZPX
	case ModeZeroPageY:
		return sixtyfive.ZPY
	case ModeAbsolute:
		return sixtyfive.ABS
	case ModeAbsoluteX:
		return sixtyfive.ABX
	case ModeAbsoluteY:
		return sixtyfive.ABY
	case ModeIndirectX:
		return sixtyfive.IDX
	case ModeIndirectY:
		return sixtyfive.IDY
	case ModeIndirect:
		return sixtyfive.IND
	default:
		return sixtyfive.IMP
	}
}

// Pragma is a parsed assembler directive.
type Pragma struct {
	Kind    PragmaKind
	Byte    byte
	Bytes   []byte
	Word    AddressOperand
	Origin  AddressOperand
	Name    string         // .define name
	Define  AddressOperand // .define value
	Include string
}

// PragmaKind enumerates the pragma forms the parser recognizes.
type PragmaKind byte

const (
	PragmaByte PragmaKind = iota
	PragmaBytes
	PragmaWord
	PragmaOrigin
	PragmaDefine
	PragmaInclude
)

// PayloadKind distinguishes the body of a parsed Line.
type PayloadKind byte

const (
	PayloadNone PayloadKind = iota
	PayloadInstruction
	PayloadPragma
)

// Line is a single parsed line of assembly: an optional label, an
// optional payload (instruction or pragma), and the source line number.
type Line struct {
	LineNumber int
	Label      string
	Payload    PayloadKind
	Opcode     string
	Mode       AddressingMode
	Pragma     Pragma
}
