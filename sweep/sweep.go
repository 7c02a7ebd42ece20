// Package sweep evaluates many independent estimates in parallel.
package sweep

import (
	"fmt"
	"runtime"
	"sync"
)

// A Job is one independent estimate.
type Job[T any] func() (T, error)

// Outcome is the result of one job.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// Run runs the jobs on at most workers goroutines and returns the outcomes
// in the order of the jobs. A non-positive worker count uses one goroutine
// per CPU. The failure of a job does not stop the others.
func Run[T any](jobs []Job[T], workers int) []Outcome[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	outcomes := make([]Outcome[T], len(jobs))
	indices := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range indices {
				outcomes[i] = runJob(i, jobs[i])
			}
		}()
	}

	for i := range jobs {
		indices <- i
	}

	close(indices)
	wg.Wait()

	return outcomes
}

// Point is one combination of two swept parameters.
type Point[A, B any] struct {
	X A
	Y B
}

// Grid returns every combination of the two axes, varying y fastest.
func Grid[A, B any](xs []A, ys []B) []Point[A, B] {
	points := make([]Point[A, B], 0, len(xs)*len(ys))

	for _, x := range xs {
		for _, y := range ys {
			points = append(points, Point[A, B]{X: x, Y: y})
		}
	}

	return points
}

func runJob[T any](i int, job Job[T]) (o Outcome[T]) {
	o.Index = i

	defer func() {
		if r := recover(); r != nil {
			o.Err = fmt.Errorf("job %d panicked: %v", i, r)
		}
	}()

	o.Value, o.Err = job()

	return o
}
