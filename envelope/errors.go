package envelope

import "errors"

var (
	// ErrShapeLength indicates a shape whose length differs from the table's
	// envelope size.
	ErrShapeLength = errors.New("envelope: shape length mismatch")
	// ErrBoundary indicates a shape whose first or last sample is not zero.
	ErrBoundary = errors.New("envelope: shape endpoints must be zero")
	// ErrPeakRange indicates a peak index outside the shape.
	ErrPeakRange = errors.New("envelope: peak index out of range")
	// ErrCountMismatch indicates shape data whose length is not a whole
	// multiple of the envelope size times the peak count.
	ErrCountMismatch = errors.New("envelope: shape and peak counts mismatch")
	// ErrControlPoints indicates malformed piecewise-linear control points.
	ErrControlPoints = errors.New("envelope: invalid control points")
	// ErrEmptyTable indicates interpolation over a table with no shapes.
	ErrEmptyTable = errors.New("envelope: table has no shapes")
	// ErrFactorRange indicates an interpolation factor outside [0, Len()).
	ErrFactorRange = errors.New("envelope: interpolation factor out of range")
	// ErrBufferSize indicates an output buffer whose length differs from the
	// envelope size.
	ErrBufferSize = errors.New("envelope: output buffer size mismatch")
)
