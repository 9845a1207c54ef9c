package asm

// Merge combines src into dst, copying every byte from src's written
// range; if src is empty, Merge is a no-op. Overlap uses a closed-interval
// endpoint test: Merge fails when either endpoint of dst's range [s1,e1]
// falls inside src's range [s2,e2]. A src range lying strictly inside
// dst's range is not reported as an overlap.
func Merge(dst, src *Image) error {
	if src.Empty() {
		return nil
	}

	if !dst.Empty() && overlaps(dst.Start, dst.End, src.Start, src.End) {
		return newError(src.Filename, 0, 0, "could not merge %s with %s (possible overwriting)", src.Filename, dst.Filename)
	}

	for addr := int(src.Start); addr <= int(src.End); addr++ {
		dst.Bytes[addr] = src.Bytes[addr]
	}

	if dst.Empty() {
		dst.Start, dst.End = src.Start, src.End
		return nil
	}
	if src.Start < dst.Start {
		dst.Start = src.Start
	}
	if src.End > dst.End {
		dst.End = src.End
	}
	return nil
}

func overlaps(s1, e1, s2, e2 uint16) bool {
	return (s2 <= s1 && s1 <= e2) || (s2 <= e1 && e1 <= e2)
}
