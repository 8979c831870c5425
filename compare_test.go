package uchttp

import "testing"

func runCompare(pattern StringWithLength, input string) compareResult {
	var ce compareEngine
	ce.init()
	var result compareResult
	for i := 0; i < len(input); i++ {
		result = ce.compare(input[i], pattern)
		if result != compareOngoing {
			return result
		}
		ce.increment()
	}
	return result
}

func TestCompareMatch(t *testing.T) {
	if got := runCompare(crlfPattern, "\r\n"); got != compareMatch {
		t.Fatalf("got %v, want compareMatch", got)
	}
	if got := runCompare(httpVersionBytes, "HTTP/1.1\r\n"); got != compareMatch {
		t.Fatalf("got %v, want compareMatch", got)
	}
}

func TestCompareNotMatch(t *testing.T) {
	if got := runCompare(crlfPattern, "\n\r"); got != compareNotMatch {
		t.Fatalf("got %v, want compareNotMatch", got)
	}
	if got := runCompare(httpVersionBytes, "HTTP/1.0\r\n"); got != compareNotMatch {
		t.Fatalf("got %v, want compareNotMatch", got)
	}
}

func TestCompareOngoingMidPattern(t *testing.T) {
	var ce compareEngine
	ce.init()
	result := ce.compare('\r', crlfPattern)
	if result != compareOngoing {
		t.Fatalf("got %v, want compareOngoing", result)
	}
}
