// Package equiv keeps pairs of integer enumerations that denote the same
// thing, typically a native symbol set and its public counterpart, in
// lockstep without hand-written translation tables.
//
// A pair is declared once with Declare and the member tables of both sides
// (cmd/fmodenum generates those). The first cast on a pair validates it:
// every value on one side must exist on the other. A pair that fails
// validation stays broken for the life of the process and every cast on it
// reports the same *ConfigurationError.
//
//	var timeUnits = equiv.Register(equiv.Declare("TimeUnit",
//		timeUnitMembers, bindings.TimeUnitMembers))
//
//	native, err := timeUnits.Forward(TimeUnitMS)
//	public, err := equiv.Cast[TimeUnit](native)
package equiv
