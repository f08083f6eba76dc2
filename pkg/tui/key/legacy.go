// ABOUTME: CSI and SS3 escape sequence table for the navigation keys.
// ABOUTME: Covers the encodings xterm, VT220 and rxvt-style terminals send for arrows, home/end and paging.

package key

var legacySequences = map[string]Key{
	// CSI
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[7~": {Type: KeyHome},
	"\x1b[8~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},

	// SS3 (application cursor mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

// maxSequenceLen is the longest entry in legacySequences.
const maxSequenceLen = 4

// IsPrefix reports whether data could still grow into a known sequence.
func IsPrefix(data string) bool {
	if len(data) >= maxSequenceLen {
		return false
	}
	for seq := range legacySequences {
		if len(seq) > len(data) && seq[:len(data)] == data {
			return true
		}
	}
	return false
}

// MatchPrefix returns the known sequence at the start of data, if any.
func MatchPrefix(data string) (Key, int, bool) {
	for n := min(len(data), maxSequenceLen); n >= 2; n-- {
		if k, ok := legacySequences[data[:n]]; ok {
			return k, n, true
		}
	}
	return Key{}, 0, false
}
