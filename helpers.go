package uchttp

// Helper API for use inside a ResourceCallback (and, for status/headers,
// inside an ErrorCallback). These correspond to the original
// Http_HelperXxx functions.

// Method returns the request's matched HTTP method.
func Method(conn *Connection) HTTPMethod {
	return conn.method
}

// Context returns the opaque value passed to Initialize, typically the
// transport handle or a request-scoped logger.
func Context(conn *Connection) any {
	return conn.context
}

// Parameter looks up name (case-insensitively) among whichever of header,
// query-string, and form fields the request carried, all sharing one
// namespace exactly as the original implementation's single packed store
// does. Values are returned verbatim: no percent-decoding is performed
// anywhere in this package.
func Parameter(conn *Connection, name string) (string, bool) {
	v, ok := conn.params.lookup([]byte(name))
	if !ok {
		return "", false
	}
	return string(v), true
}

// SetStatus writes the response status line. Call it before SetHeader and
// SendHeader.
func SetStatus(conn *Connection, status HTTPStatusCode) {
	conn.framer.write(httpVersionStatusPrefix)
	conn.framer.write([]byte(status.CodeDigits()))
	conn.framer.write(spaceBytes.Bytes)
	conn.framer.write([]byte(status.Reason()))
	conn.framer.write(crlfBytes)
}

// SetHeader writes one response header line.
func SetHeader(conn *Connection, name, value string) {
	conn.framer.write([]byte(name))
	conn.framer.write(colonSpaceBytes)
	conn.framer.write([]byte(value))
	conn.framer.write(crlfBytes)
}

// SendHeader terminates the header section. If the response's length was
// never committed some other way, this promotes the framer to chunked
// transfer-encoding for the remainder of the response.
func SendHeader(conn *Connection) {
	conn.framer.endHeaders()
}

// SendCRLF writes a bare CRLF, e.g. to separate a status line from
// headers without setting any header, or as a blank line within a body.
func SendCRLF(conn *Connection) {
	conn.framer.write(crlfBytes)
}

// SendBody writes raw response body bytes.
func SendBody(conn *Connection, body []byte) {
	conn.framer.write(body)
}

// SendBodyParametered writes template to the response body, substituting
// each "%s" in turn with the value of the corresponding name in names
// (looked up the same way Parameter is) and "%%" with a literal '%'. It is
// the Go counterpart of the original's parametered body-send helpers, used
// to fill a canned HTML fragment with request data without building an
// intermediate string.
func SendBodyParametered(conn *Connection, template string, names ...string) {
	next := 0
	i := 0
	for i < len(template) {
		if template[i] == '%' && i+1 < len(template) {
			switch template[i+1] {
			case 's':
				if next < len(names) {
					if v, ok := Parameter(conn, names[next]); ok {
						conn.framer.write([]byte(v))
					}
					next++
				}
				i += 2
				continue
			case '%':
				conn.framer.write(percentBytes)
				i += 2
				continue
			}
		}
		conn.framer.write([]byte(template[i : i+1]))
		i++
	}
}

// Flush delivers any response bytes buffered so far to the transport
// without waiting for the buffer to fill.
func Flush(conn *Connection) {
	conn.framer.flush()
}
