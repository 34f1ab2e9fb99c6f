// Package clarion converts between the Clarion platform's integer-encoded
// date, time and color representations and their conventional Go
// counterparts.
//
// Clarion dates are the number of days between a date and the 28th of
// December, 1800. Clarion times are the number of centiseconds (hundredths
// of a second) between a time and midnight. Clarion colors pack 8-bit
// blue, green and red channels into a signed 32-bit integer, blue in the
// high byte.
//
// All types are small immutable values; conversions are pure functions and
// safe for concurrent use.
package clarion
