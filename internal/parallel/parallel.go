// Package parallel splits index ranges across goroutines for large loops.
package parallel

import (
	"runtime"
	"sync"
)

// minChunk is the smallest per-goroutine slice of work worth spawning for.
const minChunk = 64

var workers = runtime.NumCPU()

// For runs fn(i) for every i in [0, n). Small ranges run sequentially;
// larger ones are chunked across goroutines. fn must be safe to call
// concurrently for distinct i.
func For(n int, fn func(i int)) {
	if workers <= 1 || n < 2*minChunk {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
