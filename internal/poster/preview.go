package poster

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/poster-studio/internal/types"
)

// previewWorkers bounds concurrent renders in a gallery preview
const previewWorkers = 4

// RenderAll renders the posting against every registered template, for
// template-picker galleries. Renders are independent pure computations, so
// they run concurrently; the only error path is context cancellation.
func RenderAll(ctx context.Context, posting *types.JobPosting, style *types.StyleConfig) (map[string]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(previewWorkers)

	var mu sync.Mutex
	out := make(map[string]string, len(themeRegistry))

	for _, desc := range Templates() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc := Render(desc.ID, posting, style)
			mu.Lock()
			out[desc.ID] = doc
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
