package runeio

// CaretForm computes the ^-escaped printable form of a C0 control rune
// (^@ for NUL, ^I for TAB, ^[ for ESC), or "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}
