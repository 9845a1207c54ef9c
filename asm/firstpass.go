package asm

import (
	"fmt"
	"strings"

	"github.com/mricon/sixtyfive"
)

// ArgKind identifies the shape of an AnnotatedLine's operand.
type ArgKind byte

const (
	ArgNone ArgKind = iota
	ArgByte
	ArgByteLabel
	ArgByteLabelLow
	ArgByteLabelHigh
	ArgRelativeLabel
	ArgWord
	ArgWordLabel
)

// InstructionArg is the still-possibly-unresolved operand of an
// AnnotatedLine, as selected by the first pass.
type InstructionArg struct {
	Kind  ArgKind
	Byte  byte
	Word  uint16
	Label string
}

// AnnotatedLine is the unit of work handed from the first pass to the
// second. For an encoded instruction, OpcodeByte and Operand describe the
// bytes to emit; Length is the total instruction size in bytes (including
// the opcode). For pragma-emitted raw data (.byte/.bytes/.word with a
// literal operand), IsData is true and Data already holds the final
// bytes; a .word referencing an unresolved label instead carries an
// ArgWordLabel operand, resolved in the second pass like any other label.
type AnnotatedLine struct {
	LoadAddr   uint16
	Length     int
	OpcodeByte byte
	Operand    InstructionArg
	IsData     bool
	Data       []byte
	SourceLine int
}

// FirstPassResult is the output of running the first pass over one file's
// parsed lines: the annotated instruction/data stream and the symbol
// table built while assigning addresses.
type FirstPassResult struct {
	Filename string
	Lines    []AnnotatedLine
	Symbols  map[string]uint16
}

var branchMnemonics = map[string]bool{
	"BPL": true, "BMI": true, "BVC": true, "BVS": true,
	"BCC": true, "BCS": true, "BNE": true, "BEQ": true,
}

// FirstPass walks parsed lines, assigning addresses, selecting opcodes,
// and building the symbol table. Label and .define references must
// already be bound by the time they're used in an .origin or .define
// (forward references are legal only inside instruction operands, and
// are resolved in the second pass).
func FirstPass(filename string, lines []*Line, log tracer) (*FirstPassResult, error) {
	log.section("Assigning addresses")

	addr := uint16(0)
	symbols := make(map[string]uint16)
	var annotated []AnnotatedLine

	bind := func(name string, value uint16, lineNumber int) error {
		if _, exists := symbols[name]; exists {
			return newError(filename, lineNumber, 0, "label '%s' used more than once", name)
		}
		symbols[name] = value
		return nil
	}

	resolveAddr := func(a AddressOperand, lineNumber int) (uint16, error) {
		if !a.IsLabel {
			return a.Literal, nil
		}
		v, ok := symbols[a.Label]
		if !ok {
			return 0, newError(filename, lineNumber, 0, "undeclared label '%s' used in directive", a.Label)
		}
		return v, nil
	}

	for _, ln := range lines {
		if ln.Label != "" {
			if err := bind(ln.Label, addr, ln.LineNumber); err != nil {
				return nil, err
			}
		}

		switch ln.Payload {
		case PayloadNone:
			continue

		case PayloadPragma:
			switch ln.Pragma.Kind {
			case PragmaByte:
				annotated = append(annotated, AnnotatedLine{LoadAddr: addr, Length: 1, IsData: true, Data: []byte{ln.Pragma.Byte}, SourceLine: ln.LineNumber})
				next, err := advance(addr, 1, filename, ln.LineNumber)
				if err != nil {
					return nil, err
				}
				addr = next

			case PragmaBytes:
				n := len(ln.Pragma.Bytes)
				annotated = append(annotated, AnnotatedLine{LoadAddr: addr, Length: n, IsData: true, Data: ln.Pragma.Bytes, SourceLine: ln.LineNumber})
				next, err := advance(addr, n, filename, ln.LineNumber)
				if err != nil {
					return nil, err
				}
				addr = next

			case PragmaWord:
				al := AnnotatedLine{LoadAddr: addr, Length: 2, SourceLine: ln.LineNumber}
				if ln.Pragma.Word.IsLabel {
					al.IsData = true
					al.Operand = InstructionArg{Kind: ArgWordLabel, Label: ln.Pragma.Word.Label}
				} else {
					v := ln.Pragma.Word.Literal
					al.IsData = true
					al.Data = []byte{byte(v), byte(v >> 8)}
				}
				annotated = append(annotated, al)
				next, err := advance(addr, 2, filename, ln.LineNumber)
				if err != nil {
					return nil, err
				}
				addr = next

			case PragmaOrigin:
				v, err := resolveAddr(ln.Pragma.Origin, ln.LineNumber)
				if err != nil {
					return nil, err
				}
				addr = v

			case PragmaDefine:
				v, err := resolveAddr(ln.Pragma.Define, ln.LineNumber)
				if err != nil {
					return nil, err
				}
				if err := bind(ln.Pragma.Name, v, ln.LineNumber); err != nil {
					return nil, err
				}
			}

		case PayloadInstruction:
			inst, arg, err := selectInstruction(ln.Opcode, ln.Mode)
			if err != nil {
				return nil, newError(filename, ln.LineNumber, 0, "%s", err.Error())
			}
			log.line(filename, ln.LineNumber, "%04X  %s Len:%d Mode:%s Opcode:%02X",
				addr, ln.Opcode, inst.Length, inst.Mode, inst.Opcode)

			annotated = append(annotated, AnnotatedLine{
				LoadAddr:   addr,
				Length:     int(inst.Length),
				OpcodeByte: inst.Opcode,
				Operand:    arg,
				SourceLine: ln.LineNumber,
			})
			next, err := advance(addr, int(inst.Length), filename, ln.LineNumber)
			if err != nil {
				return nil, err
			}
			addr = next
		}
	}

	return &FirstPassResult{Filename: filename, Lines: annotated, Symbols: symbols}, nil
}

// advance moves the address counter forward by n bytes, failing if doing
// so would walk off the end of the 16-bit address space.
func advance(addr uint16, n int, filename string, lineNumber int) (uint16, error) {
	if int(addr)+n > 0x10000 {
		return 0, newError(filename, lineNumber, 0, "instruction extends past the end of the address space")
	}
	return uint16(int(addr) + n), nil
}

// selectInstruction chooses the opcode byte and operand encoding for a
// (mnemonic, addressing mode) pair, per the aaa-bbb-cc grouping described
// in spec.md §4.3. The gating rules for each instruction family (which
// modes an instruction family permits) live entirely in the sixtyfive
// opcode table, so this function is a single shared dispatcher rather
// than one branch per mnemonic.
func selectInstruction(mnemonic string, mode AddressingMode) (sixtyfive.Instruction, InstructionArg, error) {
	mnemonic = strings.ToUpper(mnemonic)

	if branchMnemonics[mnemonic] {
		if mode.Kind != ModeAbsolute || !mode.Addr.IsLabel {
			return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid argument for opcode '%s'", mnemonic)
		}
		inst, ok := sixtyfive.Find(mnemonic, sixtyfive.REL)
		if !ok {
			return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid opcode '%s'", mnemonic)
		}
		return inst, InstructionArg{Kind: ArgRelativeLabel, Label: mode.Addr.Label}, nil
	}

	switch mnemonic {
	case "JMP":
		if mode.Kind != ModeAbsolute && mode.Kind != ModeIndirect {
			return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid argument for opcode 'JMP'")
		}
		inst, _ := sixtyfive.Find("JMP", mode.Kind.Base())
		return inst, wordArg(mode.Addr), nil

	case "JSR":
		if mode.Kind != ModeAbsolute {
			return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid argument for opcode 'JSR'")
		}
		inst, _ := sixtyfive.Find("JSR", sixtyfive.ABS)
		return inst, wordArg(mode.Addr), nil
	}

	if sixtyfive.Lookup(mnemonic) == nil {
		return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid opcode '%s'", mnemonic)
	}

	inst, ok := sixtyfive.Find(mnemonic, mode.Kind.Base())
	if !ok {
		return sixtyfive.Instruction{}, InstructionArg{}, fmt.Errorf("Invalid argument for opcode '%s'", mnemonic)
	}

	arg, err := instructionArg(mode)
	if err != nil {
		return sixtyfive.Instruction{}, InstructionArg{}, err
	}
	return inst, arg, nil
}

func wordArg(addr AddressOperand) InstructionArg {
	if addr.IsLabel {
		return InstructionArg{Kind: ArgWordLabel, Label: addr.Label}
	}
	return InstructionArg{Kind: ArgWord, Word: addr.Literal}
}

func instructionArg(mode AddressingMode) (InstructionArg, error) {
	switch mode.Kind {
	case ModeImplicit:
		return InstructionArg{Kind: ArgNone}, nil

	case ModeImmediate:
		switch mode.Imm.Kind {
		case ImmLiteral:
			return InstructionArg{Kind: ArgByte, Byte: mode.Imm.Literal}, nil
		case ImmLabel:
			return InstructionArg{Kind: ArgByteLabel, Label: mode.Imm.Label}, nil
		case ImmLowByte:
			return InstructionArg{Kind: ArgByteLabelLow, Label: mode.Imm.Label}, nil
		case ImmHighByte:
			return InstructionArg{Kind: ArgByteLabelHigh, Label: mode.Imm.Label}, nil
		}

	case ModeZeroPage, ModeZeroPageX, ModeZeroPageY, ModeIndirectX, ModeIndirectY:
		if mode.Addr.IsLabel {
			return InstructionArg{Kind: ArgByteLabel, Label: mode.Addr.Label}, nil
		}
		return InstructionArg{Kind: ArgByte, Byte: byte(mode.Addr.Literal)}, nil

	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return wordArg(mode.Addr), nil
	}
	return InstructionArg{}, fmt.Errorf("unsupported addressing mode")
}
