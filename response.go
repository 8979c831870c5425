package uchttp

// transferType distinguishes how the response framer (C4) currently emits
// buffered bytes. It starts in transferDefault and is promoted to
// transferChunked the first time the response headers are terminated
// without the embedder having already committed to a fixed
// Content-Length. transferLengthBased is carried over from the original
// enum for an embedder that sets Content-Length itself before any body
// bytes are sent; the core never performs that promotion on its own.
type transferType int

const (
	transferDefault transferType = iota
	transferChunked
	transferLengthBased
)

// responseFramer buffers outgoing response bytes into HTTPBufferLength-size
// chunks and hands them to a SendCallback, re-driving the callback when it
// accepts fewer bytes than offered. Once the header section ends without a
// known length, it promotes itself to RFC 7230 §4.1 chunked framing: each
// subsequent flush is wrapped in a hex chunk-size line, and Close emits the
// terminating zero-length chunk. See spec §4.4.
type responseFramer struct {
	send SendCallback
	ctx  any

	buf    [HTTPBufferLength]byte
	bufIdx int

	transfer transferType
}

// init arms the framer to send through send with the given embedder
// context, discarding anything previously buffered.
func (rf *responseFramer) init(send SendCallback, ctx any) {
	rf.send = send
	rf.ctx = ctx
	rf.reset()
}

// reset discards any buffered bytes and drops the framer back to
// unpromoted, length-undecided transfer, keeping its send callback and
// context. Called at the start of every response, not just once per
// transport, so a Connection recycled across many sequential requests
// starts each response with a clean buffer instead of carrying over
// whatever the previous response left behind.
func (rf *responseFramer) reset() {
	rf.bufIdx = 0
	rf.transfer = transferDefault
}

// write appends data to the output buffer, flushing whenever the buffer
// fills, so that no single write call requires the buffer to hold more
// than HTTPBufferLength bytes at once.
func (rf *responseFramer) write(data []byte) {
	for len(data) > 0 {
		n := copy(rf.buf[rf.bufIdx:], data)
		rf.bufIdx += n
		data = data[n:]
		if rf.bufIdx == len(rf.buf) {
			rf.flush()
		}
	}
}

// flush delivers everything currently buffered to the send callback,
// through chunk framing if the framer has been promoted to chunked
// transfer, and resets the buffer.
func (rf *responseFramer) flush() {
	if rf.bufIdx == 0 {
		return
	}
	if rf.transfer == transferChunked {
		rf.sendAll(uitoh(uint32(rf.bufIdx)))
		rf.sendAll(crlfBytes)
		rf.sendAll(rf.buf[:rf.bufIdx])
		rf.sendAll(crlfBytes)
	} else {
		rf.sendAll(rf.buf[:rf.bufIdx])
	}
	rf.bufIdx = 0
}

// sendAll drives the send callback until every byte of data has been
// accepted, the way the original Http_SendPortWrapper loop handles partial
// send() returns.
func (rf *responseFramer) sendAll(data []byte) {
	for len(data) > 0 {
		n := rf.send(rf.ctx, data)
		if n <= 0 {
			return
		}
		data = data[n:]
	}
}

// endHeaders terminates the header section with the blank CRLF line. If no
// Content-Length has been committed, it also announces and promotes to
// chunked transfer before flushing, exactly as the original
// ResponseEngine_SendHeader does.
func (rf *responseFramer) endHeaders() {
	if rf.transfer == transferDefault {
		rf.write(headerTransferEncodingChunked)
		rf.write(crlfBytes)
		rf.write(crlfBytes)
		rf.flush()
		rf.transfer = transferChunked
		return
	}
	rf.write(crlfBytes)
	rf.flush()
}

// close flushes any remaining buffered bytes and, if the framer is in
// chunked transfer, emits the terminating zero-length chunk.
func (rf *responseFramer) close() {
	rf.flush()
	if rf.transfer == transferChunked {
		rf.sendAll(finalChunkBytes)
	}
}

// uitoh renders v as uppercase hexadecimal with no leading zeros, except
// that zero itself renders as "0" — the Go port of the original's
// Utils_Uitoh nibble-shifting formatter, used for chunk-size lines.
func uitoh(v uint32) []byte {
	if v == 0 {
		return []byte{'0'}
	}
	const digits = "0123456789ABCDEF"
	var tmp [8]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = digits[v&0xF]
		v >>= 4
	}
	out := make([]byte, len(tmp)-i)
	copy(out, tmp[i:])
	return out
}
