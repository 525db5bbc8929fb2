package mailing

import "golang.org/x/sync/errgroup"

const defaultConcurrency = 16

// forEachLimited runs fn for every index with at most limit calls in flight and
// returns once all of them have finished.
func forEachLimited(limit, n int, fn func(i int)) {
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
