package persona

import "strconv"

// Code is the closed set of response status codes. Adding a code means
// adding an enumeration member plus its rows in the Status and String
// tables; the numeric value never comes from the tag's representation.
type Code int

// Success is the single modeled status code.
const Success Code = iota

// Status returns the numeric status code.
func (c Code) Status() uint16 {
	switch c {
	case Success:
		return 200
	}
	return 0
}

// String returns the canonical reason phrase.
func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}
