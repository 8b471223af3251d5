package md2rtf

import "runtime"

// Worker pool sizing constants.
const (
	// MinPoolSize ensures at least one render worker.
	MinPoolSize = 1

	// MaxPoolSize caps render workers; the pipeline is CPU-bound string
	// work, so more goroutines than this stop paying off.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the assembling goroutine and callers.
	cpuDivisor = 2
)

// ResolvePoolSize determines the render worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
