// Package distance provides the distance contract used by kdforest and its
// reference metric.
//
// A distance function must be deterministic, treat larger values as farther,
// and be bounded below by the squared difference along any single axis. The
// forest derives branch lower bounds by summing squared per-axis separations,
// so only separable squared metrics keep those bounds valid.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	fn, err := distance.Provider[float32](distance.MetricL2)
package distance
