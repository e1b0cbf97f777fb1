package easybook

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one item is processed at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent items; publishing is CPU-bound.
	MaxWorkers = 8
)

// ResolveWorkers determines the number of concurrent items.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// PublishBook publishes items concurrently and aggregates the results in
// input order. Tables are registered in item order once every item
// succeeded, so a failed book leaves the registry untouched.
// The first error cancels the remaining items.
func (p *Publisher) PublishBook(ctx context.Context, items []Item) (result *BookResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(items) == 0 {
		return &BookResult{}, nil
	}

	workers := ResolveWorkers(p.cfg.workers)
	results := make([]*ItemResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("internal error: %v", r)
				}
			}()

			res, err := p.publish(gctx, item)
			if err != nil {
				if isCancellation(err) {
					return err
				}
				return fmt.Errorf("publishing item %q: %w", itemName(item, i), err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		p.register(res)
	}

	book := &BookResult{Items: results}
	book.ListOfTables, err = p.ListOfTables()
	if err != nil {
		return nil, err
	}

	p.logger.Info("book published", "items", len(results), "tables", book.TableCount(), "workers", workers)
	return book, nil
}

// itemName identifies an item in error messages.
func itemName(item Item, i int) string {
	switch {
	case item.Title != "":
		return item.Title
	case item.Number != "":
		return item.Number
	default:
		return fmt.Sprintf("#%d", i+1)
	}
}
