// Package buffer provides float64 sample-buffer utilities for the envelope
// interpolation hot path: a resizable Buffer for scratch memory, a Pool for
// allocation-free reuse, and a Double buffer for handing a freshly computed
// curve to a real-time consumer without blocking it.
//
// Envelope functions accept raw []float64 slices; these types are optional
// conveniences for callers that manage allocation and cross-thread handoff.
package buffer
