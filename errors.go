package kdforest

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every argument validation error, so callers
// can test for caller contract violations with a single errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = fmt.Errorf("%w: k must be positive", ErrInvalidArgument)

	// ErrEmptyDataset is returned when constructing a forest over zero points.
	ErrEmptyDataset = fmt.Errorf("%w: point set is empty", ErrInvalidArgument)

	// ErrTooManyPoints is returned when the point count exceeds the index range.
	ErrTooManyPoints = fmt.Errorf("%w: too many points", ErrInvalidArgument)

	// ErrInvalidNumTrees is returned when the forest is configured with no trees.
	ErrInvalidNumTrees = fmt.Errorf("%w: number of trees must be positive", ErrInvalidArgument)

	// ErrNilDistanceFunc is returned when no distance function is configured.
	ErrNilDistanceFunc = fmt.Errorf("%w: distance function is nil", ErrInvalidArgument)
)

// ErrDimensionMismatch indicates a query/index dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return ErrInvalidArgument }

// ErrInsufficientData indicates the point array is shorter than n*dim.
type ErrInsufficientData struct {
	Expected int
	Actual   int
}

func (e *ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient point data: expected %d values, got %d", e.Expected, e.Actual)
}

func (e *ErrInsufficientData) Unwrap() error { return ErrInvalidArgument }

// ErrIndexOutOfRange indicates a point index outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidArgument }
