package uchttp

// StringWithLength is a non-owning view of a byte sequence with an
// explicit length, mirroring the original C STRING_WITH_LENGTH pairs. The
// explicit length lets sorted tables carry precomputed lengths instead of
// relying on NUL termination.
type StringWithLength struct {
	Bytes  []byte
	Length int
}

// sw builds a StringWithLength from a Go string literal, the Go analogue
// of the original STRING_WITH_LENGTH(x) macro.
func sw(s string) StringWithLength {
	return StringWithLength{Bytes: []byte(s), Length: len(s)}
}

// HTTPMethod identifies a request method. Values are the index of the
// method's entry in the sorted methods table (methods.go), so they also
// double as the tHttpMethod enum from the original implementation.
type HTTPMethod uint8

const (
	MethodCONNECT HTTPMethod = iota
	MethodDELETE
	MethodGET
	MethodHEAD
	MethodOPTIONS
	MethodPOST
	MethodPUT
	MethodTRACE
)

// String returns the method's wire-format name.
func (m HTTPMethod) String() string {
	if int(m) >= len(methodsTable) {
		return "UNKNOWN"
	}
	return string(methodsTable[m].Bytes)
}

// HTTPStatusCode is an index into the status code / reason phrase table
// (statuscode.go). The enum order matches the original tHttpStatusCode so
// that embedder code ported from the C resources table needs no
// renumbering.
type HTTPStatusCode int

const (
	StatusOK HTTPStatusCode = iota
	StatusContinue
	StatusBadRequest
	StatusForbidden
	StatusNotFound
	StatusLengthRequired
	StatusRequestURITooLong
	StatusRequestHeaderFieldsTooLarge
	StatusServerFault
	StatusNotImplemented
	StatusVersionNotSupported
)

// ResourceCallback handles a fully-parsed request for one resource. It
// runs inline, synchronously, with the framer live on conn; it returns the
// status the framer should have already announced via SetStatus (the
// return value exists for symmetry with the original tResourceCallback and
// for embedders that want to log it, but the framer does not re-derive a
// status line from it).
type ResourceCallback func(conn *Connection) HTTPStatusCode

// ResourceEntry pairs a registered abs_path with the callback invoked once
// it has been fully matched. The embedder-supplied slice of ResourceEntry
// passed to Initialize MUST be sorted ascending by Name in byte-lexicographic
// order — the binary-search matcher (search.go) relies on it, and violating
// it is undefined behavior of the core, exactly as in the original
// implementation's resources-template.c.
type ResourceEntry struct {
	Name     StringWithLength
	Callback ResourceCallback
}

// Resource builds a ResourceEntry from a path string and callback, the Go
// analogue of a { STRING_WITH_LENGTH(...), &Callback } table row.
func Resource(path string, cb ResourceCallback) ResourceEntry {
	return ResourceEntry{Name: sw(path), Callback: cb}
}

// ErrorInfo carries the status recorded by the Error Router (C7) for
// delivery to the embedder's OnError callback.
type ErrorInfo struct {
	Status HTTPStatusCode
}

// SendCallback transmits bytes to the transport and reports how many were
// actually accepted, so the framer can re-drive the remainder. The
// embedder is responsible for backpressure.
type SendCallback func(ctx any, data []byte) (accepted int)

// ErrorCallback is invoked once per rejected request, synchronously, with
// the recorded ErrorInfo. The embedder typically uses the helper API to
// write an error response and then closes the transport.
type ErrorCallback func(conn *Connection, info *ErrorInfo)
