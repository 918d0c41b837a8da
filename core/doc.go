// Package core defines the central Uncertain, Tagged, and Const value
// types, the process-wide identity counter, and the polymorphic accessor
// functions the propagation engine is written against.
//
// An Uncertain pairs a nominal (best-estimate) value with an uncertainty
// (one-sigma-equivalent spread). Upper and Lower are the one-sided
// perturbation points nominal ± uncertainty used by finite-difference
// propagation.
//
// A Tagged wraps an Uncertain together with a unique identity so the
// variable can be referenced across separate propagation calls, which is
// what makes correlation-store tracking possible. Identities come from a
// single atomic counter: every id is positive, distinct, and strictly
// increasing; 0 is reserved to mean "untracked". Copying a Tagged copies
// its identity — a copy is the same tracked variable — and only an
// explicit Renew mints a new one.
//
// A Const adapts a plain float64 into the Value interface: it is its own
// nominal with zero uncertainty, so exact constants mix freely with
// uncertain arguments in a propagation call.
package core
