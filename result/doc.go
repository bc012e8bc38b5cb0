// Package result turns native FMOD_RESULT codes into Go values.
//
// Every wrapped FMOD call produces a Result. Classify decides, under a
// Policy, whether that code is success, a failure the caller has asked to
// tolerate, or a failure that must reach the caller as an *Error. Check and
// CheckValue apply that decision for the two call shapes the facades use:
// mutations that only report success, and queries that also write an
// out-parameter.
//
// Two failure kinds are tolerable on request: KindInvalidHandle (the handle
// no longer refers to a live object) and KindHandleStolen (the engine reused
// the voice for another sound). Every other code, including codes FMOD does
// not document, is KindUnexpected and always surfaces.
package result
