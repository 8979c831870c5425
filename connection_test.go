package uchttp

import "testing"

func noopSend(ctx any, data []byte) int { return len(data) }

func noopError(conn *Connection, info *ErrorInfo) {}

func TestInitializeRejectsEmptyResources(t *testing.T) {
	var conn Connection
	err := Initialize(&conn, noopSend, noopError, nil, nil)
	if err != ErrNoResources {
		t.Fatalf("err = %v, want ErrNoResources", err)
	}
}

func TestInitializeRejectsNilSend(t *testing.T) {
	var conn Connection
	resources := []ResourceEntry{Resource("/a", func(*Connection) HTTPStatusCode { return StatusOK })}
	err := Initialize(&conn, nil, noopError, resources, nil)
	if err != ErrNilSend {
		t.Fatalf("err = %v, want ErrNilSend", err)
	}
}

func TestInitializeRejectsNilOnError(t *testing.T) {
	var conn Connection
	resources := []ResourceEntry{Resource("/a", func(*Connection) HTTPStatusCode { return StatusOK })}
	err := Initialize(&conn, noopSend, nil, resources, nil)
	if err != ErrNilOnError {
		t.Fatalf("err = %v, want ErrNilOnError", err)
	}
}

func TestInitializeOK(t *testing.T) {
	var conn Connection
	resources := []ResourceEntry{Resource("/a", func(*Connection) HTTPStatusCode { return StatusOK })}
	if err := Initialize(&conn, noopSend, noopError, resources, "ctx"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if conn.st != stateInitMethodSearch {
		t.Fatalf("initial state = %v, want stateInitMethodSearch", conn.st)
	}
	if !conn.initialization {
		t.Fatalf("expected initialization flag to be set on a freshly initialized connection")
	}
}

func TestConnectionPoolRoundTrip(t *testing.T) {
	pool := NewConnectionPool()
	conn := pool.Get()
	if conn == nil {
		t.Fatal("pool.Get() returned nil")
	}
	pool.Put(conn)
	conn2 := pool.Get()
	if conn2 == nil {
		t.Fatal("pool.Get() returned nil after put")
	}
}
