package studio

import "fmt"

// GUID identifies a Studio object, laid out like FMOD_GUID.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String formats g as {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}, the form FMOD
// Studio shows.
func (g GUID) String() string {
	return fmt.Sprintf("{%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// IsZero reports whether every byte of g is zero.
func (g GUID) IsZero() bool {
	return g == GUID{}
}
