package lessonpdf

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// prefetch resolves urls with at most workers concurrent fetches.
// results[i] always holds the outcome of urls[i], whatever the completion
// order. A failed fetch is Absent and never cancels its siblings.
// With workers <= 1 the fetches run one after another in the caller's
// goroutine. Empty urls are never passed to r.
func prefetch(ctx context.Context, r AssetResolver, urls []string, workers int) []ImageResult {
	results := make([]ImageResult, len(urls))
	if workers <= 1 {
		for i, u := range urls {
			if u != "" {
				results[i] = r.Resolve(ctx, u)
			}
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, u := range urls {
		if u == "" {
			continue
		}
		g.Go(func() error {
			results[i] = r.Resolve(ctx, u)
			return nil
		})
	}
	_ = g.Wait() // Resolve never fails

	return results
}
