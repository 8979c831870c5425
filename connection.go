package uchttp

import "sync"

// state identifies one state of the Request State Machine (C5). Each value
// corresponds one-to-one with a state function registered in
// stateFunctions (state.go).
type state uint8

const (
	stateInitMethodSearch state = iota
	stateParseMethod
	statePostMethod
	stateDetectURI
	stateParseAbsPath
	stateInitParamEngine
	stateParseResourceEnding
	stateParseURLEncodedFormName
	stateParseURLEncodedFormValue
	stateParseHTTPVersion
	stateCheckHeaderEnd
	stateParseParameterName
	stateParseParameterValue
	stateAnalyzeEntity
	stateParseURLEncodedEntityName
	stateParseURLEncodedEntityValue
	stateSkipEntity
	stateCallResource
	stateCallErrorCallback
)

// sharedArea holds the small, short-lived bookkeeping values that belong
// to only one phase of the request at a time: the Search Engine while
// matching the method or an abs_path, the Compare Engine while matching
// fixed tokens and line endings, and the error info while a rejected
// request is handed to the error callback. The original implementation
// unions these because only one phase is ever active; Go has no union, so
// this keeps them as plain fields instead, all reused across requests
// without reallocating. The parameter store itself is NOT part of this
// area — see Connection.params — because its content must remain
// readable by the resource callback in the CallResource phase, a
// different phase than the one that filled it in. The response framer is
// not part of it either; it is Connection.framer.
type sharedArea struct {
	search  searchEngine
	compare compareEngine
	err     ErrorInfo
}

// Connection is a fixed-size, reusable parser/framer for a single
// request at a time on one transport. Allocate it once per transport
// connection (or draw one from a Pool) and feed it transport bytes
// through Input; never share it across concurrently active transports.
type Connection struct {
	st             state
	initialization bool

	method        HTTPMethod
	resourceIdx   int
	contentLength int
	bodyRead      int

	resources []ResourceEntry
	onError   ErrorCallback
	context   any

	shared sharedArea

	// paramsBuf backs both the parameter store's packed buffer and, on
	// loan before the store is armed for accumulation, the Search
	// Engine's scratch space, matching the original's pointer-sharing
	// between se->buffer and sm->parametersBuffer.
	paramsBuf [HTTPParametersBufferLength]byte
	params    parameterStore

	framer responseFramer
}

// Initialize arms conn for a fresh request on a newly (re)used transport.
// resources must be sorted ascending by Name and non-empty; send and
// onError must be non-nil. context is opaque data threaded through to
// resource and error callbacks (e.g. the net.Conn or a request-scoped
// logger).
func Initialize(conn *Connection, send SendCallback, onError ErrorCallback, resources []ResourceEntry, context any) error {
	if len(resources) == 0 {
		return ErrNoResources
	}
	if send == nil {
		return ErrNilSend
	}
	if onError == nil {
		return ErrNilOnError
	}

	conn.st = stateInitMethodSearch
	conn.initialization = true
	conn.method = 0
	conn.resourceIdx = -1
	conn.contentLength = 0
	conn.bodyRead = 0
	conn.resources = resources
	conn.onError = onError
	conn.context = context
	conn.shared = sharedArea{}
	conn.params.init(conn.paramsBuf[:])
	conn.framer.init(send, context)
	return nil
}

// ConnectionPool recycles *Connection values across many transport
// lifetimes, the way http11/pool.go pools parsers and buffered readers:
// the state machine's fixed arrays make a Connection expensive to zero
// from scratch but cheap to re-arm via Initialize. The pool itself holds
// no per-request state, so a single ConnectionPool is safe to share
// across every accepted transport connection.
type ConnectionPool struct {
	pool sync.Pool
}

// NewConnectionPool returns an empty pool.
func NewConnectionPool() *ConnectionPool {
	return &ConnectionPool{
		pool: sync.Pool{New: func() any { return &Connection{} }},
	}
}

// Get returns a *Connection ready to be armed with Initialize, either
// newly allocated or recycled from a prior Put.
func (p *ConnectionPool) Get() *Connection {
	return p.pool.Get().(*Connection)
}

// Put returns conn to the pool once its transport has closed.
func (p *ConnectionPool) Put(conn *Connection) {
	p.pool.Put(conn)
}
