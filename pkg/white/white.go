// 11 Feb 2025

// Package white removes white space from byte slices, in place.
// The parsers call it on every chunk of sequence text, so it
// should not allocate.
package white

var whiteTable = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove squeezes the white space out of a byte slice. It works in
// place and shortens the slice. The capacity is unchanged.
func Remove(s *[]byte) {
	t := *s
	n := 0
	for _, c := range t {
		if !whiteTable[c] {
			t[n] = c
			n++
		}
	}
	*s = t[:n]
}
