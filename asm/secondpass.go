package asm

// Image is the 64KiB write canvas produced by the second pass for a
// single file. Start and End delimit the inclusive range of addresses
// that were actually written; an untouched file reports the canonical
// empty range Start=0xFFFF, End=0x0000.
type Image struct {
	Filename string
	Start    uint16
	End      uint16
	Bytes    [65536]byte
}

// Empty reports whether no byte was ever written to the image.
func (img *Image) Empty() bool {
	return img.Start == 0xFFFF && img.End == 0x0000
}

func newImage(filename string) *Image {
	return &Image{Filename: filename, Start: 0xFFFF, End: 0x0000}
}

// NewOutputImage creates an empty accumulating image, suitable as the
// merge target for a multi-file assembly run.
func NewOutputImage() *Image {
	return newImage("")
}

// SecondPass walks the annotated line stream produced by FirstPass,
// resolving labels and rendering every instruction and data pragma to
// its final bytes in a fresh 64KiB image. A non-zero byte already
// present at a write target is treated as evidence of an overlapping
// earlier write and is fatal, since plain zero is indistinguishable
// from "untouched" on this canvas.
func SecondPass(res *FirstPassResult, log tracer) (*Image, error) {
	log.section("Encoding")

	img := newImage(res.Filename)

	resolve := func(label string, lineNumber int) (uint16, error) {
		v, ok := res.Symbols[label]
		if !ok {
			return 0, newError(res.Filename, lineNumber, 0, "Undeclared label '%s' used as value", label)
		}
		return v, nil
	}

	for _, al := range res.Lines {
		var out []byte

		if al.IsData {
			if al.Operand.Kind == ArgWordLabel {
				v, err := resolve(al.Operand.Label, al.SourceLine)
				if err != nil {
					return nil, err
				}
				out = []byte{byte(v), byte(v >> 8)}
			} else {
				out = al.Data
			}
		} else {
			out = append(out, al.OpcodeByte)
			tail, err := encodeOperand(res.Filename, al, resolve)
			if err != nil {
				return nil, err
			}
			out = append(out, tail...)
		}

		if err := img.write(res.Filename, al.LoadAddr, out, al.SourceLine); err != nil {
			return nil, err
		}
		log.bytes(int(al.LoadAddr), out)
	}

	return img, nil
}

// encodeOperand renders an instruction's operand bytes (everything past
// the opcode byte). The result is always al.Length-1 bytes long.
func encodeOperand(filename string, al AnnotatedLine, resolve func(string, int) (uint16, error)) ([]byte, error) {
	switch al.Operand.Kind {
	case ArgNone:
		// BRK's second byte is a reserved signature byte, always zero;
		// ordinary one-byte implicit instructions have Length 1 and
		// contribute nothing here.
		if al.Length > 1 {
			return make([]byte, al.Length-1), nil
		}
		return nil, nil

	case ArgByte:
		return []byte{al.Operand.Byte}, nil

	case ArgByteLabel:
		v, err := resolve(al.Operand.Label, al.SourceLine)
		if err != nil {
			return nil, err
		}
		if v > 0xFF {
			return nil, newError(filename, al.SourceLine, 0, "Expected byte, found word")
		}
		return []byte{byte(v)}, nil

	case ArgByteLabelLow:
		v, err := resolve(al.Operand.Label, al.SourceLine)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v)}, nil

	case ArgByteLabelHigh:
		v, err := resolve(al.Operand.Label, al.SourceLine)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v >> 8)}, nil

	case ArgRelativeLabel:
		v, err := resolve(al.Operand.Label, al.SourceLine)
		if err != nil {
			return nil, err
		}
		rel := int(v) - (int(al.LoadAddr) + int(al.Length))
		if rel < -128 || rel > 127 {
			return nil, newError(filename, al.SourceLine, 0, "Label '%s' is too far away", al.Operand.Label)
		}
		return []byte{byte(int8(rel))}, nil

	case ArgWord:
		return []byte{byte(al.Operand.Word), byte(al.Operand.Word >> 8)}, nil

	case ArgWordLabel:
		v, err := resolve(al.Operand.Label, al.SourceLine)
		if err != nil {
			return nil, err
		}
		return []byte{byte(v), byte(v >> 8)}, nil
	}
	return nil, newError(filename, al.SourceLine, 0, "unhandled operand kind %d", al.Operand.Kind)
}

// write copies b into the image starting at addr, failing if any target
// byte is already non-zero, and extends the image's written range to
// cover the new bytes.
func (img *Image) write(filename string, addr uint16, b []byte, lineNumber int) error {
	for i, v := range b {
		pos := int(addr) + i
		if img.Bytes[pos] != 0 {
			return newError(filename, lineNumber, 0, "Address $%04X was already written", pos)
		}
		img.Bytes[pos] = v
	}
	if len(b) == 0 {
		return nil
	}
	start := addr
	end := addr + uint16(len(b)) - 1
	if img.Empty() {
		img.Start, img.End = start, end
		return nil
	}
	if start < img.Start {
		img.Start = start
	}
	if end > img.End {
		img.End = end
	}
	return nil
}
