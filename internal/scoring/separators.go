package scoring

// IsSeparator reports whether r is a word boundary character.
func IsSeparator(r rune) bool {
	switch r {
	case '/', '\\', '-', '_', '.', ' ', ':', ',', ';', '|', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}
