package persona

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseBasic(t *testing.T) {
	raw := "GET /hello HTTP/1.1\r\nHost: example.com\r\nUser-Agent: test\r\n\r\n"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Method != GET {
		t.Fatalf("expected method GET, got %s", req.Method)
	}
	if req.Target != "/hello" {
		t.Fatalf("expected target /hello, got %s", req.Target)
	}
	if req.Version != (Version{Major: 1, Minor: 1}) {
		t.Fatalf("expected version 1.1, got %s", req.Version)
	}
	want := []Header{{Name: "Host", Value: "example.com"}, {Name: "User-Agent", Value: "test"}}
	if !reflect.DeepEqual(req.Headers(), want) {
		t.Fatalf("unexpected headers: %+v", req.Headers())
	}
	if len(req.Frames) != 1 {
		t.Fatalf("expected only a headers frame, got %d frames", len(req.Frames))
	}
}

func TestParseContentLengthDiscardsExtra(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nContent-Length: 5\r\n\r\nHELLOEXTRA"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(req.Payload()); got != "HELLO" {
		t.Fatalf("expected payload HELLO, got %q", got)
	}
}

func TestParseContentLengthCountsRunes(t *testing.T) {
	// The declared length counts text units, not bytes: 5 runes of "hélloX"
	// span 6 bytes and stop before the X.
	raw := "POST / HTTP/1.1\r\nContent-Length: 5\r\n\r\nhélloX"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(req.Payload()); got != "héllo" {
		t.Fatalf("expected payload héllo, got %q", got)
	}
	if got := len(req.Payload()); got != 6 {
		t.Fatalf("expected 6 payload bytes, got %d", got)
	}
}

func TestParseNoHeaders(t *testing.T) {
	req, err := Parse([]byte("GET / HTTP/1.1\r\n\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Headers()) != 0 {
		t.Fatalf("expected empty header list, got %+v", req.Headers())
	}
	if len(req.Frames) != 1 {
		t.Fatalf("expected no data frame, got %d frames", len(req.Frames))
	}
}

func TestParseZeroContentLength(t *testing.T) {
	req, err := Parse([]byte("POST /submit HTTP/1.1\r\nContent-Length: 0\r\n\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Frames) != 2 {
		t.Fatalf("expected data frame for declared empty body, got %d frames", len(req.Frames))
	}
	if len(req.Payload()) != 0 {
		t.Fatalf("expected empty payload, got %q", req.Payload())
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty input":             []byte(""),
		"unknown method":          []byte("BADVERB / HTTP/1.1\r\n\r\n"),
		"missing version":         []byte("GET /\r\n\r\n"),
		"no colon in header":      []byte("GET / HTTP/1.1\r\nNoColonHere\r\n\r\n"),
		"empty header name":       []byte("GET / HTTP/1.1\r\n: value\r\n\r\n"),
		"empty header value":      []byte("GET / HTTP/1.1\r\nName:   \r\n\r\n"),
		"non-numeric version":     []byte("GET / HTTP/x.y\r\n\r\n"),
		"version missing minor":   []byte("GET / HTTP/1\r\n\r\n"),
		"bad content length":      []byte("GET / HTTP/1.1\r\nContent-Length: five\r\n\r\n"),
		"negative content length": []byte("GET / HTTP/1.1\r\nContent-Length: -1\r\n\r\n"),
		"invalid utf-8":           {0xff, 0xfe, 0xfd},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := Parse(raw)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if req != nil {
				t.Fatalf("expected no partial message, got %+v", req)
			}
		})
	}
}

func TestParseMethodCaseInsensitive(t *testing.T) {
	for _, tok := range []string{"get", "GET", "Get"} {
		req, err := Parse([]byte(tok + " / HTTP/1.1\r\n\r\n"))
		if err != nil {
			t.Fatalf("parse %q: %v", tok, err)
		}
		if req.Method != GET {
			t.Fatalf("expected GET for %q, got %s", tok, req.Method)
		}
		if req.Method.String() != "GET" {
			t.Fatalf("expected upper-case wire form, got %s", req.Method)
		}
	}
}

func TestParseKeepsDuplicateHeaders(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Length: 2\r\nContent-Length: 4\r\n\r\nABCDEF"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First declaration wins for the body; both stay in the list.
	if got := string(req.Payload()); got != "AB" {
		t.Fatalf("expected payload AB, got %q", got)
	}
	if len(req.Headers()) != 2 {
		t.Fatalf("expected both duplicates retained, got %+v", req.Headers())
	}
}

func TestParseShortPayloadTruncates(t *testing.T) {
	// A declaration beyond the available input yields the shorter payload
	// instead of an error. Lenient on purpose; see DESIGN.md.
	raw := "POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nabc"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(req.Payload()); got != "abc" {
		t.Fatalf("expected truncated payload abc, got %q", got)
	}
}

func TestParseBareNewlines(t *testing.T) {
	raw := "GET /lf HTTP/1.0\nHost: x\n\n"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Version != (Version{Major: 1, Minor: 0}) {
		t.Fatalf("expected version 1.0, got %s", req.Version)
	}
	if len(req.Headers()) != 1 || req.Headers()[0].Name != "Host" {
		t.Fatalf("unexpected headers: %+v", req.Headers())
	}
}

func TestParseHeaderValueKeepsInnerWhitespace(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nUser-Agent:   curl/8.0 (x86_64)\r\n\r\n"
	req, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Headers()[0].Value; got != "curl/8.0 (x86_64)" {
		t.Fatalf("unexpected value %q", got)
	}
}
