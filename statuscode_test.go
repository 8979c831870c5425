package uchttp

import "testing"

func TestStatusLinesComplete(t *testing.T) {
	cases := map[HTTPStatusCode]string{
		StatusOK:                         "200",
		StatusNotFound:                    "404",
		StatusRequestHeaderFieldsTooLarge: "431",
		StatusVersionNotSupported:         "505",
	}
	for code, digits := range cases {
		if got := code.CodeDigits(); got != digits {
			t.Fatalf("%v.CodeDigits() = %q, want %q", code, got, digits)
		}
		if code.Reason() == "" {
			t.Fatalf("%v.Reason() is empty", code)
		}
	}
}
