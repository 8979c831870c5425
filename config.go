package uchttp

// Compile-time size budget. These mirror the #define knobs in the original
// uCHttpServer's uchttpoption.h (HTTP_BUFFER_LENGTH,
// HTTP_PARAMETERS_BUFFER_LENGTH, HTTP_PARAMETERS_MAX) and the same default
// values.
const (
	// HTTPBufferLength is the output buffer capacity of the response
	// framer, and therefore the maximum size of a single chunk emitted
	// in chunked transfer-encoding.
	HTTPBufferLength = 256

	// HTTPParametersBufferLength is the byte capacity of the parameter
	// store's packed name/value buffer, shared across the request URI
	// scratch space, headers, query parameters, and form fields.
	HTTPParametersBufferLength = 640

	// HTTPParametersMax is the number of (name, value) slots in the
	// parameter store index.
	HTTPParametersMax = 16
)

// searchScratchLength is the scratch capacity handed to the binary-search
// matcher (C1). The original implementation borrows the parameter store's
// buffer as this scratch space directly and clamps the usable length to
// 255 bytes (its cursor is a single byte); this port does the same,
// reusing ParameterStore.buf before the store has been armed for the
// parameter-accumulation phase. HTTPParametersBufferLength is 640 by
// default, comfortably above this clamp, so the constant is written out
// directly rather than computed.
const searchScratchLength = 255
