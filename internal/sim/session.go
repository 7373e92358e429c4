// Package sim drives element stores without a window. Sessions replay
// seeded random spawns and drags so recipe tables can be checked in bulk.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"alchemy/internal/alchemy"
	"alchemy/pkg/core"

	"golang.org/x/sync/errgroup"
)

// Options configures a batch of sessions.
type Options struct {
	Board    alchemy.Config
	Recipes  *alchemy.Creator
	Sessions int
	Workers  int
	Moves    int
	Seed     int64
	Logger   alchemy.Logger
}

// Result summarises one session.
type Result struct {
	Seed         int64
	Moves        int
	Combinations int
	Rejected     int
	Tiles        int
	Discovered   []alchemy.ElementType
}

// RunSession plays moves random actions on a fresh store. Roughly one action
// in four spawns a discovered type; the rest drag a random tile either next
// to another tile or to a random spot.
func RunSession(board alchemy.Config, creator *alchemy.Creator, seed int64, moves int) (Result, error) {
	store := alchemy.NewStoreWithCreator(board, creator)
	rng := core.NewRNG(seed)
	res := Result{Seed: seed, Moves: moves}

	for i := 0; i < moves; i++ {
		if store.Count() == 0 || rng.IntN(4) == 0 {
			known := store.Discovered()
			t := known[rng.IntN(len(known))]
			if _, err := store.AddElement(t); err != nil {
				return res, fmt.Errorf("session %d move %d: %w", seed, i, err)
			}
			continue
		}

		elements := store.Elements()
		moved := elements[rng.IntN(len(elements))]
		x, y := randomTarget(rng, board, elements)
		combo, err := store.SetNewPosition(moved.ID, x, y)
		switch {
		case errors.Is(err, alchemy.ErrOutOfBounds):
			res.Rejected++
		case err != nil:
			return res, fmt.Errorf("session %d move %d: %w", seed, i, err)
		case combo != nil:
			res.Combinations++
		}
	}

	res.Tiles = store.Count()
	res.Discovered = store.Discovered()
	return res, nil
}

func randomTarget(rng *core.RNG, board alchemy.Config, elements []alchemy.Element) (float64, float64) {
	if len(elements) > 1 && rng.Bool() {
		target := elements[rng.IntN(len(elements))]
		dx := rng.Float64n(board.ElementWidth) - board.ElementWidth/2
		dy := rng.Float64n(board.ElementHeight) - board.ElementHeight/2
		return target.Left + dx, target.Top + dy
	}
	return rng.Float64n(board.Width - board.ElementWidth), rng.Float64n(board.Height - board.ElementHeight)
}

// Run executes opts.Sessions sessions on at most opts.Workers goroutines.
// Session i uses seed opts.Seed+i. Results are returned in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Sessions <= 0 {
		return nil, nil
	}
	logger := opts.Logger
	if logger == nil {
		logger = alchemy.NewNopLogger()
	}
	creator := opts.Recipes
	if creator == nil {
		creator = alchemy.NewCreator()
	}

	results := make([]Result, opts.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i := 0; i < opts.Sessions; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunSession(opts.Board, creator, opts.Seed+int64(i), opts.Moves)
			if err != nil {
				return err
			}
			logger.Debugf("session %d: discovered=%d combinations=%d tiles=%d", res.Seed, len(res.Discovered), res.Combinations, res.Tiles)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Best returns the session with the most discoveries. Ties go to the lower
// seed. ok is false for an empty slice.
func Best(results []Result) (best Result, ok bool) {
	for _, r := range results {
		if !ok || len(r.Discovered) > len(best.Discovered) ||
			(len(r.Discovered) == len(best.Discovered) && r.Seed < best.Seed) {
			best, ok = r, true
		}
	}
	return best, ok
}

// Coverage counts how many sessions discovered each type, sorted by count
// descending and then by type.
func Coverage(results []Result) []TypeCount {
	counts := make(map[alchemy.ElementType]int)
	for _, r := range results {
		for _, t := range r.Discovered {
			counts[t]++
		}
	}
	out := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeCount{Type: t, Sessions: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sessions != out[j].Sessions {
			return out[i].Sessions > out[j].Sessions
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// TypeCount pairs a type with the number of sessions that discovered it.
type TypeCount struct {
	Type     alchemy.ElementType
	Sessions int
}
