// Package stretch resamples a curve segment to an arbitrary, possibly
// fractional virtual length via linear interpolation.
//
// A virtual length of v means the output is laid out on a grid of v
// conceptual points spanning the input; only the first floor(v) of them are
// produced. The fractional remainder lets a caller land the segment's last
// conceptual sample exactly on a non-integer boundary shared with an adjacent
// segment, which peak-aligned envelope blending relies on.
package stretch

// OutputLen returns the number of samples produced for the given virtual
// length. When excludeLast is set the output is shortened by one sample so a
// boundary point shared with an adjacent segment is not emitted twice.
func OutputLen(virtualLength float64, excludeLast bool) int {
	n := int(virtualLength)
	if excludeLast {
		n--
	}

	if n < 0 {
		return 0
	}

	return n
}

// Into resamples src onto a virtual grid of virtualLength points, writing
// OutputLen(virtualLength, excludeLast) samples into dst and returning the
// written prefix.
//
// Preconditions (caller-guaranteed, not checked): len(src) >= 1,
// virtualLength >= 1 and len(dst) >= OutputLen(virtualLength, excludeLast).
// dst must not alias src.
func Into(dst, src []float64, virtualLength float64, excludeLast bool) []float64 {
	n := OutputLen(virtualLength, excludeLast)
	out := dst[:n]

	k := len(src)
	if k == 1 || virtualLength == 1 {
		// Degenerate grid: every output sample maps to the first input.
		for i := range out {
			out[i] = src[0]
		}

		return out
	}

	scale := float64(k-1) / (virtualLength - 1)

	for x := range out {
		originalX := float64(x) * scale

		x0 := int(originalX)
		x1 := x0 + 1
		if x1 > k-1 {
			x1 = k - 1
		}

		t := originalX - float64(x0)
		out[x] = src[x0] + t*(src[x1]-src[x0])
	}

	return out
}

// Resample is the allocating convenience form of Into.
func Resample(src []float64, virtualLength float64, excludeLast bool) []float64 {
	dst := make([]float64, OutputLen(virtualLength, excludeLast))
	return Into(dst, src, virtualLength, excludeLast)
}
