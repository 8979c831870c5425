// Package uchttp implements a streaming HTTP/1.1 request parser and response
// framer for memory-constrained environments.
//
// Request bytes arrive incrementally, one arbitrarily-sized chunk at a time,
// with no requirement that chunk boundaries align to protocol tokens. The
// package drives push-style dispatch: once a registered resource has been
// identified and its headers (and, where applicable, an
// application/x-www-form-urlencoded body) have been parsed, the resource's
// callback is invoked with access to headers, query parameters, and form
// fields, plus helpers to emit the response.
//
// The package allocates nothing on the request hot path: a Connection is a
// fixed-size, externally-owned value, reusable across many requests on the
// same transport. Transport I/O, TLS, routing-table construction, and
// resource callbacks are the embedder's responsibility; see cmd/uchttpd and
// examples/demoresources for a reference embedder.
package uchttp
