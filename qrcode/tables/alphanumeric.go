package tables

// alphanumericTable maps ASCII values to their alphanumeric-mode code
// (0-44), or -1 if the character is outside the 45-symbol alphabet: digits,
// uppercase Latin letters, space, and $%*+-./:.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// AlphanumericCode returns the alphanumeric-mode code for an ASCII byte
// value, or -1 if the byte is not in the alphanumeric alphabet.
func AlphanumericCode(b int) int {
	if b < 0 || b >= 128 {
		return -1
	}
	return alphanumericTable[b]
}
