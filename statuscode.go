package uchttp

// statusLines maps each HTTPStatusCode to its wire-format code digits and
// reason phrase, in the order of the original tHttpStatusCode enum and the
// statuscodes[][2] table in uchttpserver.c.
var statusLines = [...][2]string{
	StatusOK:                          {"200", "OK"},
	StatusContinue:                    {"100", "Continue"},
	StatusBadRequest:                  {"400", "Bad Request"},
	StatusForbidden:                   {"403", "Forbidden"},
	StatusNotFound:                    {"404", "Not Found"},
	StatusLengthRequired:              {"411", "Length Required"},
	StatusRequestURITooLong:           {"414", "Request-URI Too Long"},
	StatusRequestHeaderFieldsTooLarge: {"431", "Request Header Fields Too Large"},
	StatusServerFault:                 {"500", "Server fault"},
	StatusNotImplemented:              {"501", "Not Implemented"},
	StatusVersionNotSupported:         {"505", "Version not supported"},
}

// CodeDigits returns the three-digit status code, e.g. "404".
func (c HTTPStatusCode) CodeDigits() string {
	return statusLines[c][0]
}

// Reason returns the status line's reason phrase, e.g. "Not Found".
func (c HTTPStatusCode) Reason() string {
	return statusLines[c][1]
}
