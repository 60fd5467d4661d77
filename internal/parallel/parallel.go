// Package parallel provides the bulk data-parallel loop used by every
// numeric stage of the pipeline.
package parallel

import (
	"runtime"
	"sync"
)

// ForEach runs body(i) for every i in [0, n), spreading the iterations
// over at most workers goroutines in contiguous chunks. workers <= 0
// means one goroutine per CPU.
//
// Iterations must be independent: body must not mutate state shared
// with another index except through atomics.
func ForEach(n, workers int, body func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}
