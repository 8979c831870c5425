package uchttp

import "testing"

func writeParam(ps *parameterStore, name, value string) {
	ps.beginName()
	for i := 0; i < len(name); i++ {
		ps.addChar(name[i])
	}
	ps.endName()
	for i := 0; i < len(value); i++ {
		ps.addChar(value[i])
	}
	ps.endValue()
}

func TestParameterStoreLookup(t *testing.T) {
	var buf [HTTPParametersBufferLength]byte
	var ps parameterStore
	ps.init(buf[:])

	writeParam(&ps, "Content-Type", "text/plain")
	writeParam(&ps, "X-Count", "3")

	v, ok := ps.lookup([]byte("content-type"))
	if !ok || string(v) != "text/plain" {
		t.Fatalf("lookup(content-type) = %q, %v", v, ok)
	}
	v, ok = ps.lookup([]byte("X-COUNT"))
	if !ok || string(v) != "3" {
		t.Fatalf("lookup(X-COUNT) = %q, %v", v, ok)
	}
	if _, ok := ps.lookup([]byte("missing")); ok {
		t.Fatalf("lookup(missing) unexpectedly found")
	}
}

func TestParameterStoreSlotsFull(t *testing.T) {
	var buf [HTTPParametersBufferLength]byte
	var ps parameterStore
	ps.init(buf[:])

	for i := 0; i < HTTPParametersMax+2; i++ {
		writeParam(&ps, "k", "v")
	}
	if ps.count != HTTPParametersMax {
		t.Fatalf("count = %d, want %d", ps.count, HTTPParametersMax)
	}
}

func TestParameterStoreBufferOverflow(t *testing.T) {
	buf := make([]byte, 8)
	var ps parameterStore
	ps.init(buf)

	ps.beginName()
	for i := 0; i < 20; i++ {
		ps.addChar('a')
	}
	ps.endName()
	ps.endValue()

	if !ps.full {
		t.Fatalf("expected store to report full after overflowing buffer")
	}
	if buf[len(buf)-1] != 0 {
		t.Fatalf("last buffer byte = %d, want forced NUL terminator", buf[len(buf)-1])
	}
}
