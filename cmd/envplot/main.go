// Command envplot renders peak-preserving envelope interpolations as ASCII
// plots.
//
// Usage:
//
//	envplot [flags]
//
// It authors four reference shapes, interpolates between them at the
// requested fractional factors and plots every resulting curve. Each curve is
// produced through a double buffer the way a real-time consumer would
// receive it.
//
// Examples:
//
//	envplot
//	envplot -factors 0,0.5,1.25,3.9
//	envplot -size 120 -height 16
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glesdora/envelopes-interpolator/analyze"
	"github.com/glesdora/envelopes-interpolator/buffer"
	"github.com/glesdora/envelopes-interpolator/envelope"
)

func main() {
	size := flag.Int("size", 100, "envelope length in samples (>= 82)")
	height := flag.Int("height", 12, "vertical plot resolution in rows")
	factors := flag.String("factors", "0,1.5,2.2,3.3", "comma-separated interpolation factors")
	flag.Parse()

	if err := run(*size, *height, *factors); err != nil {
		fmt.Fprintln(os.Stderr, "envplot:", err)
		os.Exit(1)
	}
}

func run(size, height int, factorList string) error {
	// The reference shapes pin control points up to x=81.
	if size < 82 {
		return fmt.Errorf("size must be >= 82: %d", size)
	}

	if height < 1 {
		return fmt.Errorf("height must be >= 1: %d", height)
	}

	factors, err := parseFactors(factorList)
	if err != nil {
		return err
	}

	tab, err := demoTable(size)
	if err != nil {
		return err
	}

	in := envelope.NewInterpolator(tab)
	db := buffer.NewDouble(size)

	for _, s := range factors {
		if err := in.Interpolate(s, db.Inactive()); err != nil {
			return fmt.Errorf("factor %g: %w", s, err)
		}

		db.Swap()

		curve := db.Active()
		peakIdx, peakVal := analyze.Peak(curve)

		fmt.Printf("\nInterpolation factor: %g (peak %.3f at index %d)\n", s, peakVal, peakIdx)
		plot(curve, height)
	}

	return nil
}

// demoTable authors the four reference shapes of the original demo program.
func demoTable(size int) (*envelope.Table, error) {
	tab, err := envelope.New(size)
	if err != nil {
		return nil, err
	}

	shapes := []struct {
		points []envelope.Point
		peak   int
	}{
		{points: []envelope.Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: size - 6, Y: 0}, {X: size - 3, Y: 0.5}, {X: size - 1, Y: 0}}, peak: 3},
		{points: []envelope.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: size - 1, Y: 0}}, peak: 1},
		{points: []envelope.Point{{X: 0, Y: 0}, {X: size - 2, Y: 1}, {X: size - 1, Y: 0}}, peak: size - 2},
		{points: []envelope.Point{{X: 0, Y: 0}, {X: 15, Y: 1}, {X: 40, Y: 0.6}, {X: 80, Y: 0.6}, {X: size - 1, Y: 0}}, peak: 15},
	}

	for i, s := range shapes {
		if err := tab.AppendLinear(s.points, s.peak); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}

	return tab, nil
}

func parseFactors(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	factors := make([]float64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad factor %q: %w", p, err)
		}

		factors = append(factors, f)
	}

	if len(factors) == 0 {
		return nil, fmt.Errorf("no interpolation factors given")
	}

	return factors, nil
}

// plot draws the curve as rows of stars, highest amplitude row first.
func plot(curve []float64, height int) {
	for row := height; row >= 0; row-- {
		var b strings.Builder
		fmt.Fprintf(&b, "%2d | ", row)

		for _, v := range curve {
			if int(v*float64(height)) == row {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}

		fmt.Println(b.String())
	}

	fmt.Printf("     %s\n", strings.Repeat("-", len(curve)))
}
