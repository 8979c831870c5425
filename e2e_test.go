package uchttp

import (
	"bytes"
	"testing"
)

// feedSplit drives req through a fresh Connection, split into two pieces at
// byte offset split (feeding the first piece, then the second in a
// separate Input call), and returns everything the send callback
// received plus whether onError fired.
func feedSplit(t *testing.T, resources []ResourceEntry, req []byte, split int) (out []byte, errored bool) {
	t.Helper()

	var conn Connection
	var buf bytes.Buffer
	send := func(ctx any, data []byte) int {
		n, _ := buf.Write(data)
		return n
	}
	onError := func(c *Connection, info *ErrorInfo) {
		errored = true
		SetStatus(c, info.Status)
		SendHeader(c)
		Flush(c)
	}

	if err := Initialize(&conn, send, onError, resources, nil); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	Input(&conn, req[:split])
	Input(&conn, req[split:])

	return buf.Bytes(), errored
}

func echoResource(status HTTPStatusCode, body string) ResourceCallback {
	return func(conn *Connection) HTTPStatusCode {
		SetStatus(conn, status)
		SendHeader(conn)
		SendBody(conn, []byte(body))
		return status
	}
}

func testResources() []ResourceEntry {
	return []ResourceEntry{
		Resource("/aaa", echoResource(StatusOK, "aaa-ok")),
		Resource("/bbb", func(conn *Connection) HTTPStatusCode {
			x, _ := Parameter(conn, "x")
			y, _ := Parameter(conn, "y")
			SetStatus(conn, StatusOK)
			SendHeader(conn)
			SendBody(conn, []byte(x+","+y))
			return StatusOK
		}),
		Resource("/form", func(conn *Connection) HTTPStatusCode {
			a, _ := Parameter(conn, "a")
			b, _ := Parameter(conn, "b")
			SetStatus(conn, StatusOK)
			SendHeader(conn)
			SendBody(conn, []byte(a+"|"+b))
			return StatusOK
		}),
	}
}

func TestEndToEndMinimalGETAcrossAllSplits(t *testing.T) {
	req := []byte("GET /aaa HTTP/1.1\r\n\r\n")
	resources := testResources()

	var reference []byte
	for split := 0; split <= len(req); split++ {
		out, errored := feedSplit(t, resources, req, split)
		if errored {
			t.Fatalf("split=%d: unexpected error callback", split)
		}
		if reference == nil {
			reference = out
		} else if !bytes.Equal(out, reference) {
			t.Fatalf("split=%d: output %q != reference %q", split, out, reference)
		}
	}
	if !bytes.Contains(reference, []byte("aaa-ok")) {
		t.Fatalf("reference output missing body: %q", reference)
	}
	if !bytes.HasPrefix(reference, []byte("HTTP/1.1 200 OK\r\n")) {
		t.Fatalf("reference output missing status line: %q", reference)
	}
}

func TestEndToEndQueryString(t *testing.T) {
	req := []byte("GET /bbb?x=1&y=2 HTTP/1.1\r\n\r\n")
	out, errored := feedSplit(t, testResources(), req, len(req)/2)
	if errored {
		t.Fatalf("unexpected error callback")
	}
	if !bytes.Contains(out, []byte("1,2")) {
		t.Fatalf("output missing query values: %q", out)
	}
}

func TestEndToEndUnknownPathIs404(t *testing.T) {
	req := []byte("GET /zzz HTTP/1.1\r\n\r\n")
	out, errored := feedSplit(t, testResources(), req, len(req)/2)
	if !errored {
		t.Fatalf("expected error callback for unknown path")
	}
	if !bytes.Contains(out, []byte("404")) {
		t.Fatalf("output missing 404 status: %q", out)
	}
}

func TestEndToEndUnknownMethodIs501(t *testing.T) {
	req := []byte("PATCH /aaa HTTP/1.1\r\n\r\n")
	out, errored := feedSplit(t, testResources(), req, len(req)/2)
	if !errored {
		t.Fatalf("expected error callback for unknown method")
	}
	if !bytes.Contains(out, []byte("501")) {
		t.Fatalf("output missing 501 status: %q", out)
	}
}

func TestEndToEndURLEncodedFormBodyAcrossAllSplits(t *testing.T) {
	body := "a=1&b=2"
	req := []byte("POST /form HTTP/1.1\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: 7\r\n" +
		"\r\n" + body)
	resources := testResources()

	var reference []byte
	for split := 0; split <= len(req); split++ {
		out, errored := feedSplit(t, resources, req, split)
		if errored {
			t.Fatalf("split=%d: unexpected error callback", split)
		}
		if reference == nil {
			reference = out
		} else if !bytes.Equal(out, reference) {
			t.Fatalf("split=%d: output %q != reference %q", split, out, reference)
		}
	}
	if !bytes.Contains(reference, []byte("1|2")) {
		t.Fatalf("reference output missing form values: %q", reference)
	}
}

func TestEndToEndByteAtATime(t *testing.T) {
	req := []byte("GET /aaa HTTP/1.1\r\n\r\n")
	resources := testResources()

	var conn Connection
	var buf bytes.Buffer
	send := func(ctx any, data []byte) int {
		n, _ := buf.Write(data)
		return n
	}
	errored := false
	onError := func(c *Connection, info *ErrorInfo) { errored = true }

	if err := Initialize(&conn, send, onError, resources, nil); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	for i := 0; i < len(req); i++ {
		Input(&conn, req[i:i+1])
	}
	if errored {
		t.Fatalf("unexpected error callback")
	}
	if !bytes.Contains(buf.Bytes(), []byte("aaa-ok")) {
		t.Fatalf("output missing body: %q", buf.Bytes())
	}
}
