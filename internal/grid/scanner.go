package grid

// UnitLen returns the byte length of the visual unit that starts with b.
// Continuation bytes and invalid leaders count as a single byte so malformed
// input still advances.
func UnitLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b>>5 == 0x06:
		return 2
	case b>>4 == 0x0E:
		return 3
	case b>>3 == 0x1E:
		return 4
	default:
		return 1
	}
}

// NextUnit returns the visual unit starting at byte offset pos of s. A unit
// whose declared length runs past the end of s is truncated to what remains.
// An offset outside s yields "".
func NextUnit(s string, pos int) string {
	if pos < 0 || pos >= len(s) {
		return ""
	}
	n := UnitLen(s[pos])
	if pos+n > len(s) {
		n = len(s) - pos
	}
	return s[pos : pos+n]
}

// SplitUnits splits a plain (escape free) string into visual units.
func SplitUnits(s string) []string {
	units := make([]string, 0, len(s))
	for pos := 0; pos < len(s); {
		u := NextUnit(s, pos)
		units = append(units, u)
		pos += len(u)
	}
	return units
}
