// Package analyze provides inspection helpers for envelope curves: locating
// the actual maximum of a curve and measuring its spectral roughness.
//
// Peak metadata in an envelope table is caller-declared and never validated
// against the samples; Peak lets authoring code perform that check itself.
// Roughness quantifies the high-frequency content that discontinuities or
// spurious bumps introduce into a blended curve.
package analyze

import (
	"errors"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/glesdora/envelopes-interpolator/buffer"
)

// ErrEmptyCurve indicates an empty input curve.
var ErrEmptyCurve = errors.New("analyze: empty curve")

var scratch = buffer.NewPool()

// Peak returns the index and value of the curve's maximum sample.
// On ties the lowest index wins. The curve must not be empty.
func Peak(curve []float64) (int, float64) {
	idx := 0
	for i, v := range curve {
		if v > curve[idx] {
			idx = i
		}
	}

	return idx, curve[idx]
}

// Spectrum returns the magnitude spectrum of curve, zero-padded to the next
// power of two. The result holds the non-negative-frequency bins
// [0..fftSize/2].
func Spectrum(curve []float64) ([]float64, error) {
	if len(curve) == 0 {
		return nil, ErrEmptyCurve
	}

	fftSize := nextPowerOf2(len(curve))

	in := make([]complex128, fftSize)
	for i, v := range curve {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1

	buf := scratch.Get(2 * bins)
	defer scratch.Put(buf)

	sc := buf.Samples()
	re, im := sc[:bins], sc[bins:]

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// Roughness returns the fraction of the curve's non-DC spectral energy that
// sits in the upper half-band, in [0, 1]. Smooth envelope curves score near
// zero; curves with steps or sample-to-sample ripple score high.
func Roughness(curve []float64) (float64, error) {
	mag, err := Spectrum(curve)
	if err != nil {
		return 0, err
	}

	half := len(mag) / 2

	var total, high float64

	for k := 1; k < len(mag); k++ {
		p := mag[k] * mag[k]
		total += p

		if k >= half {
			high += p
		}
	}

	if total == 0 {
		return 0, nil
	}

	return high / total, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
