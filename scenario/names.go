package scenario

// NameForIndex returns the display name of the city at index i:
// 0 → "A", 25 → "Z", 26 → "AA", 27 → "AB", ... (bijective base 26).
// Negative indices yield "".
func NameForIndex(i int) string {
	if i < 0 {
		return ""
	}

	return nameForInt(i + 1)
}

// nameForInt maps 1 → "A" and recurses on the higher digits.
func nameForInt(num int) string {
	if num == 0 {
		return ""
	}
	if num <= 26 {
		return string(rune('A' + num - 1))
	}

	return nameForInt((num-1)/26) + nameForInt((num-1)%26+1)
}
