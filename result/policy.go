package result

// Policy selects which expected failures a facade tolerates. The zero value
// tolerates nothing.
type Policy struct {
	// SuppressInvalidHandle turns FMOD_ERR_INVALID_HANDLE into an absent
	// value or false.
	SuppressInvalidHandle bool

	// SuppressHandleStolen turns FMOD_ERR_CHANNEL_STOLEN into an absent
	// value or false.
	SuppressHandleStolen bool
}

// SuppressAll returns a Policy that tolerates both expected failure kinds.
func SuppressAll() Policy {
	return Policy{SuppressInvalidHandle: true, SuppressHandleStolen: true}
}

// Suppresses reports whether p tolerates failures of kind k.
// KindNone and KindUnexpected are never suppressed.
func (p Policy) Suppresses(k Kind) bool {
	switch k {
	case KindInvalidHandle:
		return p.SuppressInvalidHandle
	case KindHandleStolen:
		return p.SuppressHandleStolen
	default:
		return false
	}
}
