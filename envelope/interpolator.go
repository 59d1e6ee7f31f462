package envelope

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/glesdora/envelopes-interpolator/buffer"
	"github.com/glesdora/envelopes-interpolator/internal/stretch"
)

// Interpolator blends the shapes of a Table with a fractional selector.
// It reuses one internal scratch buffer across calls, so steady-state
// interpolation allocates nothing; for the same reason a single Interpolator
// is not safe for concurrent use.
type Interpolator struct {
	table   *Table
	scratch *buffer.Buffer
}

// NewInterpolator returns an Interpolator reading from t.
func NewInterpolator(t *Table) *Interpolator {
	return &Interpolator{table: t, scratch: buffer.New(0)}
}

// Interpolate writes the blend selected by s into out.
//
// The integer part of s selects the "from" shape, its circular successor is
// the "to" shape, and the fractional part is the blend weight; an exact
// integer s reproduces the corresponding shape verbatim. s must lie in
// [0, Len()) and out must have exactly EnvelopeSize() samples.
func (in *Interpolator) Interpolate(s float64, out []float64) error {
	t := in.table

	m := t.Len()
	if m == 0 {
		return ErrEmptyTable
	}

	n := t.envSize
	if len(out) != n {
		return ErrBufferSize
	}

	if !(s >= 0 && s < float64(m)) {
		return ErrFactorRange
	}

	i1 := int(s)
	frac := s - float64(i1)

	if frac == 0 {
		copy(out, t.Shape(i1))
		return nil
	}

	i2 := (i1 + 1) % m

	p1 := float64(t.peaks[i1])
	p2 := float64(t.peaks[i2])

	// Where the blended curve's peak should land, as a real grid position.
	ghost := p1 + (p2-p1)*frac

	leftSpan := ghost + 1
	rightSpan := float64(n) - ghost

	// When the ghost peak lands exactly on the grid both halves would emit
	// a sample at the peak position; drop it from the right half.
	excludePeak := leftSpan == math.Trunc(leftSpan)

	in.scratch.Resize(3 * n)
	sc := in.scratch.Samples()
	alignedA := sc[:n]
	alignedB := sc[n : 2*n]
	seg := sc[2*n : 3*n]

	in.align(alignedA, seg, i1, leftSpan, rightSpan, excludePeak)
	in.align(alignedB, seg, i2, leftSpan, rightSpan, excludePeak)

	vecmath.ScaleBlock(out, alignedA, 1-frac)
	vecmath.ScaleBlock(seg, alignedB, frac)
	vecmath.AddBlockInPlace(out, seg)

	return nil
}

// align builds the full-length curve derived from shape i with its halves
// independently resampled so the peak lands at the ghost position. seg is
// scratch of at least EnvelopeSize() samples.
func (in *Interpolator) align(dst, seg []float64, i int, leftSpan, rightSpan float64, excludePeak bool) {
	t := in.table
	p := t.peaks[i]
	shape := t.Shape(i)

	left := stretch.Into(dst, shape[:p+1], leftSpan, false)

	// The right half is resampled reversed so the boundary-alignment of the
	// virtual grid stays anchored at the peak end; under truncation this
	// keeps the peak-adjacent sample exact. Reversed back afterwards.
	src := shape[p:]
	rev := seg[:len(src)]
	for j, v := range src {
		rev[len(src)-1-j] = v
	}

	right := stretch.Into(dst[len(left):t.envSize], rev, rightSpan, excludePeak)
	reverse(right)
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Interpolate is a one-shot convenience that allocates its scratch per call.
// Latency-sensitive callers should hold an Interpolator instead.
func Interpolate(t *Table, s float64, out []float64) error {
	return NewInterpolator(t).Interpolate(s, out)
}
