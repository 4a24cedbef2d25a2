package distance

import (
	"fmt"
)

// Scalar is the set of point element types an index can hold.
type Scalar interface {
	~float32 | ~float64 | ~uint8
}

// Func is a function type for distance calculation.
// Implementations may assume len(a) == len(b).
type Func[T Scalar] func(a, b []T) float64

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
// Accumulates in float64, so uint8 inputs never wrap.
func SquaredL2[T Scalar](a, b []T) float64 {
	b = b[:len(a)]

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := float64(a[i]) - float64(b[i])
		d1 := float64(a[i+1]) - float64(b[i+1])
		d2 := float64(a[i+2]) - float64(b[i+2])
		d3 := float64(a[i+3]) - float64(b[i+3])
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < len(a); i++ {
		d := float64(a[i]) - float64(b[i])
		s0 += d * d
	}

	return s0 + s1 + s2 + s3
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider[T Scalar](m Metric) (Func[T], error) {
	switch m {
	case MetricL2:
		return SquaredL2[T], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
