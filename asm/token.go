package asm

// Kind identifies the category of a scanned token.
type Kind byte

// Token kinds. None is an internal sentinel the scanner never returns.
const (
	None Kind = iota
	LParen
	RParen
	Colon
	Comma
	Newline
	LT
	GT
	Dot
	Hash
	Symbol
	Bin
	Oct
	Dec
	Hex
	String
	Err
	EOF
)

var kindNames = [...]string{
	None: "none", LParen: "(", RParen: ")", Colon: ":", Comma: ",",
	Newline: "newline", LT: "<", GT: ">", Dot: ".", Hash: "#",
	Symbol: "symbol", Bin: "binary", Oct: "octal", Dec: "decimal", Hex: "hex",
	String: "string", Err: "error", EOF: "eof",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "???"
}

// IsNumber reports whether the token holds one of the four numeric literal
// kinds (Bin, Oct, Dec, Hex), each of which carries a 16-bit value.
func (k Kind) IsNumber() bool {
	return k == Bin || k == Oct || k == Dec || k == Hex
}

// Token is a single lexical unit produced by the Scanner. Offset, Line and
// Column describe the position of the token's first character in the
// source buffer. Text holds the raw text for Symbol, String and Err
// tokens (the error message, for Err); Value holds the numeric value for
// the four numeric literal kinds.
type Token struct {
	Offset int
	Line   int
	Column int
	Kind   Kind
	Text   string
	Value  uint16
}
