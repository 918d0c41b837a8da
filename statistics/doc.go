// Package statistics provides the summary statistics used to turn a
// measured sample into an uncertain value: mean, variance with a
// configurable degrees-of-freedom reduction, standard deviation,
// standard error of the mean, and the z-score between two uncertain
// quantities.
//
// FromSample is the usual entry point: it condenses a sample into
// mean ± standard error of the mean. FromSampleStdev uses the standard
// deviation instead, for when the sample spread itself is the
// uncertainty of interest.
package statistics
