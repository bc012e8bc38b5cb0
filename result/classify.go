package result

// Kind is the semantic category of a Result.
type Kind int

const (
	KindNone          Kind = iota // success
	KindInvalidHandle             // FMOD_ERR_INVALID_HANDLE
	KindHandleStolen              // FMOD_ERR_CHANNEL_STOLEN
	KindUnexpected                // any other non-success code
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidHandle:
		return "invalid handle"
	case KindHandleStolen:
		return "handle stolen"
	default:
		return "unexpected"
	}
}

// Suppressible reports whether a Policy can tolerate failures of kind k.
func (k Kind) Suppressible() bool {
	return k == KindInvalidHandle || k == KindHandleStolen
}

// KindOf maps a native code to its kind.
func KindOf(code Result) Kind {
	switch code {
	case OK:
		return KindNone
	case ErrInvalidHandle:
		return KindInvalidHandle
	case ErrChannelStolen:
		return KindHandleStolen
	default:
		return KindUnexpected
	}
}

// Outcome is what a checked call does with a Result.
type Outcome int

const (
	OutcomeOK         Outcome = iota // return the value
	OutcomeSuppressed                // return no value, no error
	OutcomeSurfaced                  // return an *Error
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return "surfaced"
	}
}

// Classification is the result of Classify.
type Classification struct {
	Outcome Outcome
	Kind    Kind
	Code    Result
}

// Classify decides how a checked call treats code under p. It has no side
// effects and always returns the same value for the same inputs.
func Classify(code Result, p Policy) Classification {
	kind := KindOf(code)
	c := Classification{Kind: kind, Code: code}
	switch {
	case kind == KindNone:
		c.Outcome = OutcomeOK
	case p.Suppresses(kind):
		c.Outcome = OutcomeSuppressed
	default:
		c.Outcome = OutcomeSurfaced
	}
	return c
}
