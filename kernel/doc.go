// Package kernel is the bulk-compute gateway underneath the statistics
// engines.
//
// It exposes the narrow primitive surface the engines terminate in:
// full reductions (sum, product, min, max), central and cross moment
// sums, a stable ascending sort permutation with configurable null
// placement, order-statistic extraction under an interpolation policy,
// an inclusive null-skipping prefix scan, and elementwise rounding under
// a mode policy.
//
// Primitives operate on raw float64 buffers plus an optional validity
// slice; all policy (skip-null decisions, minimum-count gating, sentinel
// substitution) lives in the engines above. Reductions and prefix scans
// on dense buffers are backed by gonum's floats package.
//
// Length-mismatched slice arguments panic, following gonum's convention
// for programmer errors.
package kernel
