package uchttp

// stateFn advances conn by consuming as much of data[*pos:] as the current
// state needs, then returns. It may run to completion without consuming
// any byte at all (a one-shot setup state) or may consume exactly one byte
// and leave the state unchanged, waiting for the next call to supply more.
type stateFn func(conn *Connection, data []byte, pos *int)

// stateFns is indexed by state; see the state constants in connection.go.
// Each entry corresponds one-to-one with a row of the request state
// machine (C5).
var stateFns = [...]stateFn{
	stateInitMethodSearch:           stateInitMethodSearchFn,
	stateParseMethod:                stateParseMethodFn,
	statePostMethod:                 statePostMethodFn,
	stateDetectURI:                  stateDetectURIFn,
	stateParseAbsPath:               stateParseAbsPathFn,
	stateInitParamEngine:            stateInitParamEngineFn,
	stateParseResourceEnding:        stateParseResourceEndingFn,
	stateParseURLEncodedFormName:    stateParseURLEncodedFormNameFn,
	stateParseURLEncodedFormValue:   stateParseURLEncodedFormValueFn,
	stateParseHTTPVersion:           stateParseHTTPVersionFn,
	stateCheckHeaderEnd:             stateCheckHeaderEndFn,
	stateParseParameterName:         stateParseParameterNameFn,
	stateParseParameterValue:        stateParseParameterValueFn,
	stateAnalyzeEntity:              stateAnalyzeEntityFn,
	stateParseURLEncodedEntityName:  stateParseURLEncodedEntityNameFn,
	stateParseURLEncodedEntityValue: stateParseURLEncodedEntityValueFn,
	stateSkipEntity:                 stateSkipEntityFn,
	stateCallResource:               stateCallResourceFn,
	stateCallErrorCallback:          stateCallErrorCallbackFn,
}

// needsInput reports whether s must have at least one unconsumed input
// byte available to make progress. Setup-only states and the two states
// the driver must fire even with no bytes left in the current chunk
// (AnalyzeEntity, CallResource) return false; CallErrorCallback also
// returns false so the error callback fires in the same Input call that
// rejected the request, even if that call supplied no further bytes.
func needsInput(s state) bool {
	switch s {
	case stateInitMethodSearch, stateInitParamEngine, stateAnalyzeEntity,
		stateCallResource, stateCallErrorCallback:
		return false
	default:
		return true
	}
}

// rejectWith records status for the error callback and redirects the
// state machine to CallErrorCallback (C7). The byte that triggered the
// rejection, if any, is not reinterpreted by any later state: the rest of
// the chunk is discarded once CallErrorCallback runs.
func (conn *Connection) rejectWith(status HTTPStatusCode) {
	conn.shared.err.Status = status
	conn.st = stateCallErrorCallback
}

func (conn *Connection) resourceByIdx(idx int) StringWithLength {
	return conn.resources[idx].Name
}

// consumeLiteralOrReject matches one byte of pattern per call against the
// Compare Engine, advancing to onMatch on success and rejecting with
// rejectStatus on any mismatch. Used for the fixed single-interpretation
// tokens (the space after the method, the HTTP-version token) where a
// mismatch is unambiguously a protocol error rather than the start of
// something else.
func (conn *Connection) consumeLiteralOrReject(data []byte, pos *int, pattern StringWithLength, onMatch state, rejectStatus HTTPStatusCode) {
	if conn.initialization {
		conn.shared.compare.init()
	}
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch conn.shared.compare.compare(b, pattern) {
	case compareMatch:
		conn.st = onMatch
	case compareOngoing:
		conn.shared.compare.increment()
	case compareNotMatch:
		conn.rejectWith(rejectStatus)
	}
}

func stateInitMethodSearchFn(conn *Connection, data []byte, pos *int) {
	conn.contentLength = 0
	conn.shared.search.init(methodByIdx, len(methodsTable), conn.paramsBuf[:searchScratchLength])
	conn.st = stateParseMethod
}

func stateParseMethodFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch result, idx := conn.shared.search.search(b); result {
	case searchOngoing:
	case searchFound:
		conn.method = HTTPMethod(idx)
		conn.st = statePostMethod
	default:
		conn.rejectWith(StatusNotImplemented)
	}
}

func statePostMethodFn(conn *Connection, data []byte, pos *int) {
	conn.consumeLiteralOrReject(data, pos, spaceBytes, stateDetectURI, StatusBadRequest)
}

// stateDetectURIFn accepts only abs_path request targets ("/..."); every
// other request-target form (absolute-URI, authority-form, "*") is a
// Non-goal and rejected as unimplemented.
func stateDetectURIFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	if data[*pos] != '/' {
		conn.rejectWith(StatusNotImplemented)
		return
	}
	conn.shared.search.init(conn.resourceByIdx, len(conn.resources), conn.paramsBuf[:searchScratchLength])
	conn.st = stateParseAbsPath
	// The leading '/' is left unconsumed: ParseAbsPath feeds it as the
	// search engine's first byte.
}

func stateParseAbsPathFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch result, idx := conn.shared.search.search(b); result {
	case searchOngoing:
	case searchFound:
		conn.resourceIdx = idx
		conn.st = stateInitParamEngine
	case searchNotFound:
		conn.rejectWith(StatusNotFound)
	case searchBufferExceeded:
		conn.rejectWith(StatusRequestURITooLong)
	}
}

// stateInitParamEngineFn re-arms the parameter store for this request,
// unconditionally, every time an abs_path is matched — not just once per
// transport connection. Without this, a Connection recycled across many
// sequential requests (as cmd/uchttpd's read loop does) would carry over
// every earlier request's parameters forever and eventually latch
// permanently full once HTTPParametersBufferLength bytes accumulate
// across requests.
func stateInitParamEngineFn(conn *Connection, data []byte, pos *int) {
	conn.params.init(conn.paramsBuf[:])
	conn.st = stateParseResourceEnding
}

// stateParseResourceEndingFn expects the matched abs_path to be followed
// immediately by a query string or the single space before the version
// token; any other byte means the match was only a prefix of a longer,
// unregistered path.
func stateParseResourceEndingFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch b {
	case ' ':
		conn.st = stateParseHTTPVersion
	case '?':
		conn.params.beginName()
		conn.st = stateParseURLEncodedFormName
	default:
		conn.rejectWith(StatusBadRequest)
	}
}

func stateParseURLEncodedFormNameFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch b {
	case '=':
		conn.params.endName()
		conn.st = stateParseURLEncodedFormValue
	case '&':
		conn.params.endName()
		conn.params.endValue()
		conn.params.beginName()
	case ' ':
		conn.params.endName()
		conn.params.endValue()
		conn.st = stateParseHTTPVersion
	default:
		conn.params.addChar(b)
	}
}

func stateParseURLEncodedFormValueFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch b {
	case '&':
		conn.params.endValue()
		conn.params.beginName()
		conn.st = stateParseURLEncodedFormName
	case ' ':
		conn.params.endValue()
		conn.st = stateParseHTTPVersion
	default:
		conn.params.addChar(b)
	}
}

func stateParseHTTPVersionFn(conn *Connection, data []byte, pos *int) {
	conn.consumeLiteralOrReject(data, pos, httpVersionBytes, stateCheckHeaderEnd, StatusVersionNotSupported)
}

// stateCheckHeaderEndFn looks for the blank line ending the header
// section. A mismatch on the very first byte of the "\r\n" token means
// that byte is not a line terminator at all but the first character of
// the next header's name, so it is replayed into the parameter store
// instead of being discarded. A mismatch after the '\r' has already
// matched (expecting '\n') is a malformed line and is rejected outright.
func stateCheckHeaderEndFn(conn *Connection, data []byte, pos *int) {
	if conn.initialization {
		conn.shared.compare.init()
	}
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch conn.shared.compare.compare(b, crlfPattern) {
	case compareMatch:
		if conn.contentLength > 0 {
			conn.st = stateAnalyzeEntity
		} else {
			conn.st = stateCallResource
		}
	case compareOngoing:
		conn.shared.compare.increment()
	case compareNotMatch:
		if conn.shared.compare.compareIdx == 1 {
			conn.rejectWith(StatusBadRequest)
			return
		}
		conn.params.beginName()
		conn.params.addChar(b)
		conn.st = stateParseParameterName
	}
}

func stateParseParameterNameFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	if b == ':' {
		conn.params.endName()
		conn.st = stateParseParameterValue
		return
	}
	conn.params.addChar(b)
}

// stateParseParameterValueFn mirrors stateCheckHeaderEndFn's terminator
// detection, but treats a malformed line ending (a lone '\r' not followed
// by '\n') as a protocol error rather than attempting to recover it as
// value content. Spaces and horizontal tabs are dropped, not stored.
func stateParseParameterValueFn(conn *Connection, data []byte, pos *int) {
	if conn.initialization {
		conn.shared.compare.init()
	}
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	switch conn.shared.compare.compare(b, crlfPattern) {
	case compareMatch:
		conn.params.endValue()
		conn.updateContentLength()
		conn.st = stateCheckHeaderEnd
	case compareOngoing:
		conn.shared.compare.increment()
	case compareNotMatch:
		if conn.shared.compare.compareIdx == 1 {
			conn.rejectWith(StatusBadRequest)
			return
		}
		if b == ' ' || b == '\t' {
			return
		}
		conn.params.addChar(b)
	}
}

func (conn *Connection) updateContentLength() {
	v, ok := conn.params.lookup(contentLengthHeader.Bytes)
	if !ok {
		return
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return
		}
		n = n*10 + int(c-'0')
	}
	conn.contentLength = n
}

// stateAnalyzeEntityFn decides, once the header section has ended, whether
// a request body remains to be read and, if so, whether it is in a form
// this package understands (application/x-www-form-urlencoded). It runs
// even when the current input chunk has nothing left: the decision
// depends only on the already-parsed Content-Length and Content-Type
// headers, not on any further byte. A body of any other content type is
// still drained from the stream so byte accounting stays correct, just
// not parsed into parameters.
func stateAnalyzeEntityFn(conn *Connection, data []byte, pos *int) {
	if conn.contentLength <= 0 {
		conn.st = stateCallResource
		return
	}
	conn.bodyRead = 0
	if ct, ok := conn.params.lookup(contentTypeHeader.Bytes); ok && equalFoldASCII(ct, urlEncodedContentType.Bytes) {
		conn.params.beginName()
		conn.st = stateParseURLEncodedEntityName
		return
	}
	conn.st = stateSkipEntity
}

func stateSkipEntityFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	remaining := conn.contentLength - conn.bodyRead
	n := len(data) - *pos
	if n > remaining {
		n = remaining
	}
	*pos += n
	conn.bodyRead += n
	if conn.bodyRead >= conn.contentLength {
		conn.st = stateCallResource
	}
}

func stateParseURLEncodedEntityNameFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	conn.bodyRead++
	done := conn.bodyRead >= conn.contentLength
	switch b {
	case '=':
		conn.params.endName()
		conn.st = stateParseURLEncodedEntityValue
	case '&':
		// The pair ending here is already fully closed by endName/endValue;
		// a fresh pair is only opened if the body has more bytes to fill
		// it, so finishEntity never re-closes a pair that was never begun.
		conn.params.endName()
		conn.params.endValue()
		if done {
			conn.st = stateCallResource
			return
		}
		conn.params.beginName()
		return
	default:
		conn.params.addChar(b)
	}
	if done {
		conn.finishEntity()
	}
}

func stateParseURLEncodedEntityValueFn(conn *Connection, data []byte, pos *int) {
	if *pos >= len(data) {
		return
	}
	b := data[*pos]
	*pos++
	conn.bodyRead++
	done := conn.bodyRead >= conn.contentLength
	switch b {
	case '&':
		conn.params.endValue()
		if done {
			conn.st = stateCallResource
			return
		}
		conn.params.beginName()
		conn.st = stateParseURLEncodedEntityName
		return
	default:
		conn.params.addChar(b)
	}
	if done {
		conn.finishEntity()
	}
}

// finishEntity closes out whichever half of a name/value pair was open
// when the declared Content-Length was exhausted by ordinary byte
// accumulation or by a final '=' (a final '&' closes its own pair inline
// and does not come here). A one-byte body with no '=' ever seen (spec's resolved
// Content-Length == 1 case) lands here still in the Name sub-state, so
// both halves are closed: the lone byte becomes a parameter name with an
// empty value.
func (conn *Connection) finishEntity() {
	if conn.st == stateParseURLEncodedEntityName {
		conn.params.endName()
	}
	conn.params.endValue()
	conn.st = stateCallResource
}

func stateCallResourceFn(conn *Connection, data []byte, pos *int) {
	if conn.initialization {
		conn.framer.reset()
		conn.resources[conn.resourceIdx].Callback(conn)
		conn.framer.close()
	}
	*pos = len(data)
	conn.st = stateInitMethodSearch
}

func stateCallErrorCallbackFn(conn *Connection, data []byte, pos *int) {
	if conn.initialization {
		conn.framer.reset()
		conn.onError(conn, &conn.shared.err)
	}
	*pos = len(data)
	conn.st = stateInitMethodSearch
}
