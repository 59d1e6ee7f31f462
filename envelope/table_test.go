package envelope

import (
	"errors"
	"testing"
)

func TestNewRejectsTinyEnvelope(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); err == nil {
			t.Fatalf("New(%d) should fail", size)
		}
	}
}

func TestAppendValidShape(t *testing.T) {
	tab, err := New(5)
	if err != nil {
		t.Fatal(err)
	}

	if err := tab.Append([]float64{0, 1, 0.5, 0.2, 0}, 1); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}

	if tab.Peak(0) != 1 {
		t.Fatalf("Peak(0) = %d, want 1", tab.Peak(0))
	}

	got := tab.Shape(0)
	want := []float64{0, 1, 0.5, 0.2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Shape(0)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAppendRejections(t *testing.T) {
	for _, tc := range []struct {
		name  string
		shape []float64
		peak  int
		want  error
	}{
		{name: "wrong length", shape: []float64{0, 1, 0}, peak: 1, want: ErrShapeLength},
		{name: "nonzero first sample", shape: []float64{0.1, 1, 0.5, 0.2, 0}, peak: 1, want: ErrBoundary},
		{name: "nonzero last sample", shape: []float64{0, 1, 0.5, 0.2, 0.1}, peak: 1, want: ErrBoundary},
		{name: "negative peak", shape: []float64{0, 1, 0.5, 0.2, 0}, peak: -1, want: ErrPeakRange},
		{name: "peak past end", shape: []float64{0, 1, 0.5, 0.2, 0}, peak: 5, want: ErrPeakRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tab, err := New(5)
			if err != nil {
				t.Fatal(err)
			}

			if err := tab.Append(tc.shape, tc.peak); !errors.Is(err, tc.want) {
				t.Fatalf("Append = %v, want %v", err, tc.want)
			}

			if tab.Len() != 0 {
				t.Fatal("rejected Append must leave the table unchanged")
			}
		})
	}
}

func TestAppendCopiesShape(t *testing.T) {
	tab, _ := New(3)
	shape := []float64{0, 1, 0}

	if err := tab.Append(shape, 1); err != nil {
		t.Fatal(err)
	}

	shape[1] = 99
	if tab.Shape(0)[1] != 1 {
		t.Fatal("Append must copy the shape")
	}
}

func TestAppendLinearBuildsRamp(t *testing.T) {
	tab, _ := New(5)

	err := tab.AppendLinear([]Point{{0, 0}, {2, 1}, {4, 0}}, 2)
	if err != nil {
		t.Fatalf("AppendLinear: %v", err)
	}

	got := tab.Shape(0)
	want := []float64{0, 0.5, 1, 0.5, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Shape(0)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAppendLinearRejections(t *testing.T) {
	for _, tc := range []struct {
		name   string
		points []Point
		want   error
	}{
		{name: "too few points", points: []Point{{0, 0}}, want: ErrControlPoints},
		{name: "first x not zero", points: []Point{{1, 0}, {4, 0}}, want: ErrControlPoints},
		{name: "last x not end", points: []Point{{0, 0}, {3, 0}}, want: ErrControlPoints},
		{name: "nonzero first y", points: []Point{{0, 0.5}, {4, 0}}, want: ErrBoundary},
		{name: "nonzero last y", points: []Point{{0, 0}, {4, 0.5}}, want: ErrBoundary},
		{name: "non-increasing x", points: []Point{{0, 0}, {2, 1}, {2, 0.5}, {4, 0}}, want: ErrControlPoints},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tab, _ := New(5)

			if err := tab.AppendLinear(tc.points, 1); !errors.Is(err, tc.want) {
				t.Fatalf("AppendLinear = %v, want %v", err, tc.want)
			}

			if tab.Len() != 0 {
				t.Fatal("rejected AppendLinear must leave the table unchanged")
			}
		})
	}
}

func TestReplaceSwapsContents(t *testing.T) {
	tab, _ := New(3)
	if err := tab.Append([]float64{0, 1, 0}, 1); err != nil {
		t.Fatal(err)
	}

	data := []float64{0, 0.5, 0, 0, 0.8, 0}
	peaks := []int{1, 1}

	if err := tab.Replace(data, peaks); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}

	if tab.Shape(1)[1] != 0.8 {
		t.Fatalf("Shape(1)[1] = %v, want 0.8", tab.Shape(1)[1])
	}
}

func TestReplaceIsAllOrNothing(t *testing.T) {
	tab, _ := New(3)
	if err := tab.Append([]float64{0, 1, 0}, 1); err != nil {
		t.Fatal(err)
	}

	// Second shape violates the boundary-zero invariant.
	data := []float64{0, 0.5, 0, 0, 0.8, 0.1}

	if err := tab.Replace(data, []int{1, 1}); !errors.Is(err, ErrBoundary) {
		t.Fatalf("Replace = %v, want %v", err, ErrBoundary)
	}

	if tab.Len() != 1 || tab.Shape(0)[1] != 1 {
		t.Fatal("failed Replace must leave prior contents untouched")
	}
}

func TestReplaceCountMismatch(t *testing.T) {
	tab, _ := New(3)

	if err := tab.Replace([]float64{0, 1, 0}, []int{1, 1}); !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("Replace = %v, want %v", err, ErrCountMismatch)
	}
}

func TestReplaceIdempotent(t *testing.T) {
	data := []float64{0, 1, 0, 0, 0.5, 0}
	peaks := []int{1, 1}

	tab, _ := New(3)
	if err := tab.Replace(data, peaks); err != nil {
		t.Fatal(err)
	}
	if err := tab.Replace(data, peaks); err != nil {
		t.Fatal(err)
	}

	if tab.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tab.Len())
	}

	for i := 0; i < tab.Len(); i++ {
		shape := tab.Shape(i)
		for j := range shape {
			if shape[j] != data[i*3+j] {
				t.Fatalf("Shape(%d)[%d] = %v, want %v", i, j, shape[j], data[i*3+j])
			}
		}
	}
}

func TestReplaceDoesNotAliasInput(t *testing.T) {
	data := []float64{0, 1, 0}

	tab, _ := New(3)
	if err := tab.Replace(data, []int{1}); err != nil {
		t.Fatal(err)
	}

	data[1] = 99
	if tab.Shape(0)[1] != 1 {
		t.Fatal("Replace must copy the input data")
	}
}

func TestReplaceSized(t *testing.T) {
	tab, _ := New(3)

	if err := tab.ReplaceSized(4, []float64{0, 1, 0.5, 0}, []int{1}); err != nil {
		t.Fatalf("ReplaceSized: %v", err)
	}

	if tab.EnvelopeSize() != 4 {
		t.Fatalf("EnvelopeSize() = %d, want 4", tab.EnvelopeSize())
	}

	if err := tab.ReplaceSized(1, []float64{0}, []int{0}); err == nil {
		t.Fatal("ReplaceSized(1, ...) should fail")
	}
}

func TestFromFlat(t *testing.T) {
	tab, err := FromFlat(3, []float64{0, 1, 0, 0, 0.5, 0}, []int{1, 1})
	if err != nil {
		t.Fatal(err)
	}

	if tab.Len() != 2 || tab.EnvelopeSize() != 3 {
		t.Fatalf("got M=%d N=%d, want M=2 N=3", tab.Len(), tab.EnvelopeSize())
	}

	if _, err := FromFlat(3, []float64{0, 1, 0}, []int{0, 1}); !errors.Is(err, ErrCountMismatch) {
		t.Fatalf("FromFlat = %v, want %v", err, ErrCountMismatch)
	}
}
