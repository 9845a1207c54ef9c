package asm

import "strings"

// Parser consumes a token stream from a Scanner and produces a sequence of
// parsed Lines. Lookahead is bounded to one token, implemented via the
// scanner's Peek/Save/Restore, mirroring the teacher's fstring-based
// single-token-lookahead parser in asm/asm.go.
type Parser struct {
	s *Scanner
}

// NewParser creates a Parser reading from s.
func NewParser(s *Scanner) *Parser {
	return &Parser{s: s}
}

// ParseLine returns the next logical line of source, or (nil, nil) at
// end of input.
func (p *Parser) ParseLine() (*Line, error) {
	// Skip leading blank lines.
	for p.s.Peek().Kind == Newline {
		p.s.Next()
	}

	first := p.s.Peek()
	if first.Kind == EOF {
		return nil, nil
	}

	line := &Line{LineNumber: first.Line}

	// Optional "symbol ':'" label prefix.
	if first.Kind == Symbol {
		save := p.s.Save()
		sym := p.s.Next()
		if p.s.Peek().Kind == Colon {
			p.s.Next() // consume ':'
			line.Label = sym.Text
		} else {
			p.s.Restore(save)
		}
	}

	body := p.s.Peek()
	switch body.Kind {
	case Newline, EOF:
		// no body
	case Dot:
		p.s.Next()
		pragma, err := p.parsePragma()
		if err != nil {
			return nil, err
		}
		line.Payload = PayloadPragma
		line.Pragma = pragma
	case Symbol:
		mnemonic, mode, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		line.Payload = PayloadInstruction
		line.Opcode = mnemonic
		line.Mode = mode
	default:
		return nil, p.errAt(body, "unexpected token")
	}

	return line, p.expectLineEnd()
}

func (p *Parser) expectLineEnd() error {
	t := p.s.Peek()
	switch t.Kind {
	case Newline:
		p.s.Next()
		return nil
	case EOF:
		return nil
	default:
		return p.errAt(t, "expected end of line")
	}
}

func (p *Parser) errAt(t Token, format string, args ...interface{}) error {
	return newError(p.s.Filename(), t.Line, t.Column, format, args...)
}

//
// instructions
//

func (p *Parser) parseInstruction() (mnemonic string, mode AddressingMode, err error) {
	tok := p.s.Next() // Symbol
	mnemonic = strings.ToUpper(tok.Text)

	switch next := p.s.Peek(); next.Kind {
	case Newline, EOF:
		mode = AddressingMode{Kind: ModeImplicit}
		return mnemonic, mode, nil
	}

	mode, err = p.parseOperand()
	return mnemonic, mode, err
}

func (p *Parser) parseOperand() (AddressingMode, error) {
	switch t := p.s.Peek(); t.Kind {
	case Hash:
		return p.parseImmediate()
	case LParen:
		return p.parseIndirect()
	default:
		return p.parseDirect()
	}
}

func (p *Parser) parseImmediate() (AddressingMode, error) {
	p.s.Next() // '#'
	t := p.s.Next()
	switch {
	case t.Kind.IsNumber():
		if t.Value > 0xFF {
			return AddressingMode{}, p.errAt(t, "Cannot use word as immediate value")
		}
		return AddressingMode{Kind: ModeImmediate, Imm: ImmediateOperand{
			Kind: ImmLiteral, Literal: byte(t.Value),
		}}, nil
	case t.Kind == LT:
		name, err := p.expectSymbol()
		if err != nil {
			return AddressingMode{}, err
		}
		return AddressingMode{Kind: ModeImmediate, Imm: ImmediateOperand{
			Kind: ImmLowByte, Label: name,
		}}, nil
	case t.Kind == GT:
		name, err := p.expectSymbol()
		if err != nil {
			return AddressingMode{}, err
		}
		return AddressingMode{Kind: ModeImmediate, Imm: ImmediateOperand{
			Kind: ImmHighByte, Label: name,
		}}, nil
	case t.Kind == Symbol:
		return AddressingMode{Kind: ModeImmediate, Imm: ImmediateOperand{
			Kind: ImmLabel, Label: t.Text,
		}}, nil
	default:
		return AddressingMode{}, p.errAt(t, "expected immediate value")
	}
}

func (p *Parser) expectSymbol() (string, error) {
	t := p.s.Next()
	if t.Kind != Symbol {
		return "", p.errAt(t, "expected label name")
	}
	return t.Text, nil
}

func (p *Parser) parseIndirect() (AddressingMode, error) {
	p.s.Next() // '('

	addr, err := p.parseAddress()
	if err != nil {
		return AddressingMode{}, err
	}

	switch t := p.s.Peek(); t.Kind {
	case Comma:
		p.s.Next()
		if err := p.expectRegister('X'); err != nil {
			return AddressingMode{}, err
		}
		if err := p.expect(RParen, "expected ')'"); err != nil {
			return AddressingMode{}, err
		}
		return AddressingMode{Kind: ModeIndirectX, Addr: addr}, nil

	case RParen:
		p.s.Next()
		if p.s.Peek().Kind == Comma {
			p.s.Next()
			if err := p.expectRegister('Y'); err != nil {
				return AddressingMode{}, err
			}
			return AddressingMode{Kind: ModeIndirectY, Addr: addr}, nil
		}
		return AddressingMode{Kind: ModeIndirect, Addr: addr}, nil

	default:
		return AddressingMode{}, p.errAt(t, "unknown addressing mode format")
	}
}

func (p *Parser) parseDirect() (AddressingMode, error) {
	addr, err := p.parseAddress()
	if err != nil {
		return AddressingMode{}, err
	}

	var reg byte
	if p.s.Peek().Kind == Comma {
		p.s.Next()
		t := p.s.Peek()
		if t.Kind != Symbol {
			return AddressingMode{}, p.errAt(t, "Expected X or Y register")
		}
		switch strings.ToUpper(t.Text) {
		case "X":
			reg = 'X'
		case "Y":
			reg = 'Y'
		default:
			return AddressingMode{}, p.errAt(t, "Expected X or Y register")
		}
		p.s.Next()
	}

	zeroPage := !addr.IsLabel && addr.Literal <= 0xFF

	var kind ModeKind
	switch {
	case reg == 0 && zeroPage:
		kind = ModeZeroPage
	case reg == 0:
		kind = ModeAbsolute
	case reg == 'X' && zeroPage:
		kind = ModeZeroPageX
	case reg == 'X':
		kind = ModeAbsoluteX
	case reg == 'Y' && zeroPage:
		kind = ModeZeroPageY
	default:
		kind = ModeAbsoluteY
	}

	return AddressingMode{Kind: kind, Addr: addr}, nil
}

func (p *Parser) parseAddress() (AddressOperand, error) {
	t := p.s.Next()
	switch {
	case t.Kind.IsNumber():
		return AddressOperand{Literal: t.Value}, nil
	case t.Kind == Symbol:
		return AddressOperand{IsLabel: true, Label: t.Text}, nil
	default:
		return AddressOperand{}, p.errAt(t, "unknown addressing mode format")
	}
}

func (p *Parser) expectRegister(want byte) error {
	t := p.s.Next()
	if t.Kind != Symbol {
		return p.errAt(t, "Expected X or Y register")
	}
	up := strings.ToUpper(t.Text)
	if (want == 'X' && up != "X") || (want == 'Y' && up != "Y") {
		return p.errAt(t, "Expected X or Y register")
	}
	return nil
}

func (p *Parser) expect(k Kind, msg string) error {
	t := p.s.Next()
	if t.Kind != k {
		return p.errAt(t, msg)
	}
	return nil
}

//
// pragmas
//

func (p *Parser) parsePragma() (Pragma, error) {
	nameTok := p.s.Next()
	if nameTok.Kind != Symbol {
		return Pragma{}, p.errAt(nameTok, "Invalid pragma")
	}
	name := strings.ToLower(nameTok.Text)

	switch name {
	case "byte":
		return p.parsePragmaByte()
	case "bytes":
		return p.parsePragmaBytes()
	case "word":
		return p.parsePragmaWord()
	case "origin":
		return p.parsePragmaOrigin()
	case "define":
		return p.parsePragmaDefine()
	case "include":
		return p.parsePragmaInclude()
	default:
		return Pragma{}, p.errAt(nameTok, "Invalid pragma")
	}
}

func (p *Parser) parsePragmaByte() (Pragma, error) {
	t := p.s.Next()
	if !t.Kind.IsNumber() {
		return Pragma{}, p.errAt(t, "expected byte value")
	}
	if t.Value > 0xFF {
		return Pragma{}, p.errAt(t, "Cannot use word as immediate value")
	}
	return Pragma{Kind: PragmaByte, Byte: byte(t.Value)}, nil
}

func (p *Parser) parsePragmaBytes() (Pragma, error) {
	var out []byte
	for {
		switch t := p.s.Peek(); {
		case t.Kind == Newline || t.Kind == EOF:
			return Pragma{Kind: PragmaBytes, Bytes: out}, nil
		case t.Kind == String:
			p.s.Next()
			out = append(out, []byte(t.Text)...)
		case t.Kind.IsNumber():
			p.s.Next()
			if t.Value > 0xFF {
				return Pragma{}, p.errAt(t, "Cannot use word as immediate value")
			}
			out = append(out, byte(t.Value))
		default:
			return Pragma{}, p.errAt(t, "expected byte value")
		}
		if p.s.Peek().Kind == Comma {
			p.s.Next()
		}
	}
}

func (p *Parser) parsePragmaWord() (Pragma, error) {
	addr, err := p.parseAddress()
	if err != nil {
		return Pragma{}, err
	}
	return Pragma{Kind: PragmaWord, Word: addr}, nil
}

func (p *Parser) parsePragmaOrigin() (Pragma, error) {
	addr, err := p.parseAddress()
	if err != nil {
		return Pragma{}, err
	}
	return Pragma{Kind: PragmaOrigin, Origin: addr}, nil
}

func (p *Parser) parsePragmaDefine() (Pragma, error) {
	name, err := p.expectSymbol()
	if err != nil {
		return Pragma{}, err
	}
	addr, err := p.parseAddress()
	if err != nil {
		return Pragma{}, err
	}
	return Pragma{Kind: PragmaDefine, Name: name, Define: addr}, nil
}

func (p *Parser) parsePragmaInclude() (Pragma, error) {
	t := p.s.Next()
	if t.Kind != String {
		return Pragma{}, p.errAt(t, "expected a quoted path")
	}
	return Pragma{}, p.errAt(t, "'.include' is not implemented")
}
