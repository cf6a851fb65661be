package persona

import "fmt"

// Version is an HTTP protocol version as carried by an HTTP/<major>.<minor>
// token. Immutable once constructed.
type Version struct {
	Major uint8
	Minor uint8
}

// HTTP11 is the default protocol version.
var HTTP11 = Version{Major: 1, Minor: 1}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
