package envelope

import "fmt"

// Point is a control point for piecewise-linear shape authoring.
type Point struct {
	X int
	Y float64
}

// Table holds an ordered collection of equal-length shapes and their declared
// peak indices. The collection is circular: the last shape's successor is the
// first. Every shape satisfies the boundary-zero invariant (first and last
// sample are exactly zero), enforced at insertion and replacement.
//
// Shapes are stored in one flat buffer of Len()*EnvelopeSize() samples to
// avoid per-shape allocation and keep the resampling hot path cache-friendly.
//
// A Table is mutable only through whole-table replacement or single-shape
// append. It provides no internal synchronization: callers must not mutate it
// while an interpolation call is in flight.
type Table struct {
	envSize int
	data    []float64
	peaks   []int
}

// New returns an empty table whose envelope size is fixed henceforth.
// The size must be at least 2 so a shape can carry two zero endpoints.
func New(envelopeSize int) (*Table, error) {
	if envelopeSize < 2 {
		return nil, fmt.Errorf("envelope: envelope size must be >= 2: %d", envelopeSize)
	}

	return &Table{envSize: envelopeSize}, nil
}

// FromFlat builds a table from row-major shape data: envelopeSize samples per
// shape, one peak index per shape.
func FromFlat(envelopeSize int, data []float64, peaks []int) (*Table, error) {
	t, err := New(envelopeSize)
	if err != nil {
		return nil, err
	}

	if err := t.Replace(data, peaks); err != nil {
		return nil, err
	}

	return t, nil
}

// EnvelopeSize returns the fixed number of samples per shape.
func (t *Table) EnvelopeSize() int {
	return t.envSize
}

// Len returns the number of shapes.
func (t *Table) Len() int {
	return len(t.peaks)
}

// Shape returns shape i as a view into the table's storage.
// The returned slice must not be modified. i must be in [0, Len()).
func (t *Table) Shape(i int) []float64 {
	return t.data[i*t.envSize : (i+1)*t.envSize : (i+1)*t.envSize]
}

// Peak returns the declared peak index of shape i. i must be in [0, Len()).
func (t *Table) Peak(i int) int {
	return t.peaks[i]
}

// Append validates shape and peak and adds them at the end of the table.
// The shape is copied.
func (t *Table) Append(shape []float64, peak int) error {
	if err := t.validate(shape, peak); err != nil {
		return err
	}

	t.data = append(t.data, shape...)
	t.peaks = append(t.peaks, peak)

	return nil
}

// AppendLinear builds a shape by linear interpolation between consecutive
// control points and appends it. Points must have strictly increasing X, the
// first anchored at (0, 0) and the last at (EnvelopeSize()-1, 0).
func (t *Table) AppendLinear(points []Point, peak int) error {
	if len(points) < 2 {
		return ErrControlPoints
	}

	if points[0].X != 0 || points[len(points)-1].X != t.envSize-1 {
		return ErrControlPoints
	}

	if points[0].Y != 0 || points[len(points)-1].Y != 0 {
		return ErrBoundary
	}

	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return ErrControlPoints
		}
	}

	shape := make([]float64, t.envSize)

	for i := 0; i < len(points)-1; i++ {
		x0, y0 := points[i].X, points[i].Y
		x1, y1 := points[i+1].X, points[i+1].Y

		for x := x0; x <= x1; x++ {
			f := float64(x-x0) / float64(x1-x0)
			shape[x] = y0 + f*(y1-y0)
		}
	}

	return t.Append(shape, peak)
}

// Replace atomically swaps the table's contents, keeping the envelope size.
// data holds Len()'*EnvelopeSize() samples in row-major shape order. On any
// validation failure the prior contents are left untouched.
func (t *Table) Replace(data []float64, peaks []int) error {
	return t.replace(t.envSize, data, peaks)
}

// ReplaceSized is Replace with a new envelope size.
func (t *Table) ReplaceSized(envelopeSize int, data []float64, peaks []int) error {
	if envelopeSize < 2 {
		return fmt.Errorf("envelope: envelope size must be >= 2: %d", envelopeSize)
	}

	return t.replace(envelopeSize, data, peaks)
}

func (t *Table) replace(envSize int, data []float64, peaks []int) error {
	if len(data) != len(peaks)*envSize {
		return ErrCountMismatch
	}

	for i := range peaks {
		shape := data[i*envSize : (i+1)*envSize]

		if shape[0] != 0 || shape[envSize-1] != 0 {
			return ErrBoundary
		}

		if peaks[i] < 0 || peaks[i] >= envSize {
			return ErrPeakRange
		}
	}

	newData := make([]float64, len(data))
	copy(newData, data)

	newPeaks := make([]int, len(peaks))
	copy(newPeaks, peaks)

	t.envSize = envSize
	t.data = newData
	t.peaks = newPeaks

	return nil
}

func (t *Table) validate(shape []float64, peak int) error {
	if len(shape) != t.envSize {
		return ErrShapeLength
	}

	if shape[0] != 0 || shape[len(shape)-1] != 0 {
		return ErrBoundary
	}

	if peak < 0 || peak >= t.envSize {
		return ErrPeakRange
	}

	return nil
}
