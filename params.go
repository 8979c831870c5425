package uchttp

// parameterStore is the Parameter Store (C3): a fixed-capacity byte buffer
// holding NUL-separated name/value strings, indexed by a parallel,
// fixed-size table of (name offset, value offset) pairs. It backs request
// headers, query-string parameters, and url-encoded form fields alike —
// whichever the state machine is currently accumulating into it — and is
// also the backing array search.go borrows its scratch space from before
// the store is armed. See spec §3/§4.3.
type parameterStore struct {
	buf    []byte
	bufIdx int
	full   bool

	nameOffset  [HTTPParametersMax]int
	valueOffset [HTTPParametersMax]int
	count       int
}

// init arms the store over buf (capacity HTTPParametersBufferLength),
// discarding any previously accumulated entries.
func (ps *parameterStore) init(buf []byte) {
	ps.buf = buf
	ps.bufIdx = 0
	ps.full = false
	ps.count = 0
}

// beginName registers the current write position as the start of a new
// parameter name. Once HTTPParametersMax slots are already registered the
// position is silently not recorded: the index table is full, but
// subsequent character writes still proceed into the shared buffer so the
// chunk parses to completion.
func (ps *parameterStore) beginName() {
	if ps.count < HTTPParametersMax {
		ps.nameOffset[ps.count] = ps.bufIdx
	}
}

// beginValue registers the current write position as the start of the
// value belonging to the most recently begun name.
func (ps *parameterStore) beginValue() {
	if ps.count < HTTPParametersMax {
		ps.valueOffset[ps.count] = ps.bufIdx
	}
}

// endPair completes the (name, value) slot begun by the most recent
// beginName/beginValue pair, making it visible to lookup. Once
// HTTPParametersMax pairs are already registered, further pairs are
// silently dropped rather than indexed.
func (ps *parameterStore) endPair() {
	if ps.count < HTTPParametersMax {
		ps.count++
	}
}

// endName NUL-terminates the name currently being written and begins the
// value that follows it.
func (ps *parameterStore) endName() {
	ps.addChar(0)
	ps.beginValue()
}

// endValue NUL-terminates the value currently being written and completes
// the (name, value) slot, making it visible to lookup.
func (ps *parameterStore) endValue() {
	ps.addChar(0)
	ps.endPair()
}

// addChar appends one byte to the packed buffer and reports whether it was
// written. Once only one byte of buffer space remains, that byte is forced
// to NUL instead of being overwritten with input, so every name/value
// string already in the buffer stays properly terminated; no further bytes
// are accepted after that.
func (ps *parameterStore) addChar(b byte) bool {
	if ps.full {
		return false
	}
	if ps.bufIdx < len(ps.buf)-1 {
		ps.buf[ps.bufIdx] = b
		ps.bufIdx++
		return true
	}
	ps.buf[ps.bufIdx] = 0
	ps.full = true
	return false
}

// cString returns the NUL-terminated string starting at offset, excluding
// the terminator.
func (ps *parameterStore) cString(offset int) []byte {
	end := offset
	for end < len(ps.buf) && ps.buf[end] != 0 {
		end++
	}
	return ps.buf[offset:end]
}

// lookup performs a case-insensitive search for name among the registered
// pairs and returns its value. The comparison folds only ASCII 'A'-'Z',
// matching the original's byte-table case folding.
func (ps *parameterStore) lookup(name []byte) ([]byte, bool) {
	for i := 0; i < ps.count; i++ {
		if equalFoldASCII(ps.cString(ps.nameOffset[i]), name) {
			return ps.cString(ps.valueOffset[i]), true
		}
	}
	return nil, false
}

func equalFoldASCII(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if toLowerASCII(a[i]) != toLowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
