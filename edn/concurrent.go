package edn

import "golang.org/x/sync/errgroup"

// ParseAll parses each input independently and returns the results in the
// same order, bounded to concurrency goroutines at a time (0 disables
// concurrency, negative means unbounded). Each input gets its own Parser and
// Cursor and there is no global mutable state, so the batch is safe even
// though neither type is safe for concurrent use by itself. The first error
// aborts the whole batch, same as a single Parse call aborting on its first
// error.
func ParseAll(inputs []string, concurrency int) ([]Value, error) {
	results := make([]Value, len(inputs))
	eg := errgroup.Group{}
	switch {
	case concurrency == 0:
		eg.SetLimit(1)
	case concurrency > 0:
		eg.SetLimit(concurrency)
	}

	for i := range inputs {
		i := i
		eg.Go(func() error {
			v, err := Parse(inputs[i])
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
