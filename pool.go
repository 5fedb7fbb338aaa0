package sitekit

import "runtime"

// Worker sizing for parallel page loading.
const (
	// MinWorkers ensures pages are loaded at least sequentially.
	MinWorkers = 1

	// MaxWorkers caps concurrent reads against the filesystem.
	MaxWorkers = 16
)

// ResolveWorkers determines how many pages are loaded concurrently.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in containers).
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	return min(max(runtime.GOMAXPROCS(0), MinWorkers), MaxWorkers)
}
