package uchttp

// Fixed literal tokens matched by the Compare Engine (C2) and emitted by
// the response framer. Grouped here the way http11/constants.go collects
// its protocol byte-slice constants, rather than scattering string
// literals through the state machine.
var (
	spaceBytes        = sw(" ")
	questionMarkBytes = sw("?")
	crlfPattern       = sw("\r\n")
	httpVersionBytes  = sw("HTTP/1.1\r\n")
	crlfBytes         = crlfPattern.Bytes

	headerTransferEncodingChunked = []byte("Transfer-Encoding: chunked")
	colonSpaceBytes               = []byte(": ")
	finalChunkBytes               = []byte("0\r\n\r\n")

	urlEncodedContentType = sw("application/x-www-form-urlencoded")
	contentLengthHeader   = sw("content-length")
	contentTypeHeader     = sw("content-type")

	httpVersionStatusPrefix = []byte("HTTP/1.1 ")
	percentBytes            = []byte("%")
)
