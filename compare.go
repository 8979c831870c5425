package uchttp

// compareResult is the per-byte outcome of the Compare Engine (C2).
type compareResult int

const (
	compareOngoing compareResult = iota
	compareMatch
	compareNotMatch
)

// compareEngine performs an incremental linear match of input bytes against
// a single fixed literal pattern, fed one byte at a time, with no buffering
// at all beyond a single cursor. Used for the fixed tokens the state
// machine expects verbatim: " ", "\r\n", "HTTP/1.1\r\n". See spec
// §4.2.
type compareEngine struct {
	compareIdx int
}

// init arms the engine to compare from the start of pattern.
func (ce *compareEngine) init() {
	ce.compareIdx = 0
}

// compare feeds one input byte against pattern at the engine's current
// cursor and reports the outcome. It does not advance the cursor itself;
// call increment after a compareOngoing result to move to the next byte.
func (ce *compareEngine) compare(input byte, pattern StringWithLength) compareResult {
	if input != pattern.Bytes[ce.compareIdx] {
		return compareNotMatch
	}
	if ce.compareIdx == pattern.Length-1 {
		return compareMatch
	}
	return compareOngoing
}

// increment advances the cursor after a compareOngoing result.
func (ce *compareEngine) increment() {
	ce.compareIdx++
}
