package sitekit

import (
	"runtime"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit takes priority", workers: 4, want: 4},
		{name: "explicit can exceed max", workers: MaxWorkers + 4, want: MaxWorkers + 4},
		{name: "zero uses GOMAXPROCS", workers: 0, want: min(max(gomaxprocs, MinWorkers), MaxWorkers)},
		{name: "negative uses GOMAXPROCS", workers: -1, want: min(max(gomaxprocs, MinWorkers), MaxWorkers)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveWorkers(tt.workers); got != tt.want {
				t.Errorf("ResolveWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}
