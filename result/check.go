package result

// Check applies p to the code of a call that returns no value.
// It returns true on success, false when p suppresses the failure, and an
// *Error otherwise.
func Check(code Result, op string, p Policy) (bool, error) {
	switch Classify(code, p).Outcome {
	case OutcomeOK:
		return true, nil
	case OutcomeSuppressed:
		return false, nil
	default:
		return false, NewError(code, op)
	}
}

// CheckValue applies p to the code of a call that wrote value through an
// out-parameter. value is only returned when code is OK.
func CheckValue[T any](code Result, value T, op string, p Policy) (Optional[T], error) {
	ok, err := Check(code, op, p)
	if err != nil || !ok {
		return None[T](), err
	}
	return Some(value), nil
}
