// Package envelope interpolates smoothly between a circular sequence of
// one-dimensional amplitude curves while preserving a declared peak feature
// in each curve.
//
// A Table owns the authored shapes and their peak indices; an Interpolator
// blends the two shapes bracketing a fractional selector into a
// caller-supplied output buffer. Instead of blending sample-wise, which would
// blur or duplicate peaks sitting at different indices, each bracketing shape
// is split at its own peak and the halves are independently resampled toward
// a shared, fractionally positioned target peak before cross-fading. The
// table is circular: the last shape interpolates into the first.
package envelope
