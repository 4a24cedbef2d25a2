package kdforest

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdforest/distance"
)

const (
	// DefaultNumTrees is the default number of trees in a forest.
	DefaultNumTrees = 8

	// DefaultSeed is the default random seed for tree construction.
	DefaultSeed = 42
)

// Options represents the options for configuring a Forest.
type Options[T distance.Scalar] struct {
	// NumTrees is the number of randomized trees to build.
	// More trees raise recall for a given budget at the cost of memory and build time.
	NumTrees int

	// Seed initializes the forest's random source. Forests built from the same
	// points, seed and tree count are identical.
	Seed int64

	// DistanceFunc is the default distance used by searches.
	// Per-axis squared differences must lower-bound it; see package distance.
	DistanceFunc distance.Func[T]

	// Logger receives build and search logs. Defaults to NoopLogger.
	Logger *Logger

	// MetricsCollector receives build and search metrics. Defaults to NoopMetricsCollector.
	MetricsCollector MetricsCollector
}

// DefaultOptions returns the default forest options for element type T.
func DefaultOptions[T distance.Scalar]() Options[T] {
	return Options[T]{
		NumTrees:         DefaultNumTrees,
		Seed:             DefaultSeed,
		DistanceFunc:     distance.SquaredL2[T],
		Logger:           NoopLogger(),
		MetricsCollector: NoopMetricsCollector{},
	}
}

// SearchOptions configures a single search.
type SearchOptions[T distance.Scalar] struct {
	// DistanceFunc overrides the forest's distance for this search.
	DistanceFunc distance.Func[T]

	// Filter restricts results to the point indices it contains.
	// The budget counts only points that pass the filter.
	Filter *roaring.Bitmap
}

func applyOptions[T distance.Scalar](optFns []func(o *Options[T])) Options[T] {
	opts := DefaultOptions[T]()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.MetricsCollector == nil {
		opts.MetricsCollector = NoopMetricsCollector{}
	}
	return opts
}
