package persona

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// headerContentLength is matched exactly, case-sensitively; lookalike
// casings stay in the header list as ordinary headers.
const headerContentLength = "Content-Length"

// Parse decodes one HTTP/1.1 request from buf. It returns either a complete
// *Request or an error wrapping ErrMalformed; the first violated rule aborts
// the whole parse.
func Parse(buf []byte) (*Request, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrMalformed)
	}
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("invalid utf-8: %w", ErrMalformed)
	}

	line, rest := cutLine(string(buf))

	method, target, version, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	var headers []Header
	for rest != "" {
		line, rest = cutLine(rest)
		if line == "" {
			break
		}
		h, err := parseHeaderLine(line)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}

	frames := []Frame{HeadersFrame{Headers: headers}}

	// Only the first Content-Length is consulted; later duplicates stay in
	// the header list untouched.
	if v, ok := firstHeader(headers, headerContentLength); ok {
		length, err := strconv.Atoi(v)
		if err != nil || length < 0 {
			return nil, fmt.Errorf("invalid Content-Length %q: %w", v, ErrMalformed)
		}
		frames = append(frames, DataFrame{Payload: takeRunes(rest, length)})
	}

	return &Request{Method: method, Target: target, Version: version, Frames: frames}, nil
}

func parseRequestLine(line string) (Method, string, Version, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, "", Version{}, fmt.Errorf("request line %q: %w", line, ErrMalformed)
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return 0, "", Version{}, err
	}
	version, err := parseVersion(fields[2])
	if err != nil {
		return 0, "", Version{}, err
	}
	// The target is opaque text: no URL validation, no decoding.
	return method, fields[1], version, nil
}

func parseVersion(tok string) (Version, error) {
	_, num, ok := strings.Cut(tok, "HTTP/")
	if !ok {
		return Version{}, fmt.Errorf("version token %q: %w", tok, ErrMalformed)
	}
	majorTok, rest, ok := strings.Cut(num, ".")
	if !ok {
		return Version{}, fmt.Errorf("version token %q: %w", tok, ErrMalformed)
	}
	minorTok, _, _ := strings.Cut(rest, ".")
	major, err := strconv.ParseUint(majorTok, 10, 8)
	if err != nil {
		return Version{}, fmt.Errorf("version token %q: %w", tok, ErrMalformed)
	}
	minor, err := strconv.ParseUint(minorTok, 10, 8)
	if err != nil {
		return Version{}, fmt.Errorf("version token %q: %w", tok, ErrMalformed)
	}
	return Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

func parseHeaderLine(line string) (Header, error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return Header{}, fmt.Errorf("header line %q: %w", line, ErrMalformed)
	}
	value = strings.TrimLeftFunc(value, unicode.IsSpace)
	if name == "" || value == "" {
		return Header{}, fmt.Errorf("header line %q: %w", line, ErrMalformed)
	}
	return Header{Name: name, Value: value}, nil
}

func firstHeader(headers []Header, name string) (string, bool) {
	for _, h := range headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// cutLine splits off the first line, accepting both CRLF and bare LF
// terminators. A final unterminated line comes back with empty rest.
func cutLine(s string) (line, rest string) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, ""
	}
	return strings.TrimSuffix(s[:i], "\r"), s[i+1:]
}

// takeRunes returns the first n runes of s as bytes. The declared body
// length counts text units, matching the text-based line splitting; a
// shortfall yields whatever is available.
func takeRunes(s string, n int) []byte {
	for i := range s {
		if n == 0 {
			return []byte(s[:i])
		}
		n--
	}
	return []byte(s)
}
