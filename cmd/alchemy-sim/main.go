package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"alchemy/internal/alchemy"
	"alchemy/internal/app"
	"alchemy/internal/logging"
	"alchemy/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	explore := flag.Bool("explore", false, "print the recipe graph by generation and exit")
	sessions := flag.Int("sessions", 64, "number of random sessions to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	moves := flag.Int("moves", 400, "actions per session")
	seed := flag.Int64("seed", 1, "seed of the first session")
	flag.Parse()

	logger := logging.New(cfg.LogLevel)
	creator := alchemy.NewCreator()

	if *explore {
		printExploration(alchemy.Explore(creator))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Playing %d sessions (%d workers, %d moves)\n", *sessions, *workers, *moves)
	start := time.Now()
	results, err := sim.Run(ctx, sim.Options{
		Board:    cfg.Board(),
		Recipes:  creator,
		Sessions: *sessions,
		Workers:  *workers,
		Moves:    *moves,
		Seed:     *seed,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatalf("run failed: %v", err)
	}
	elapsed := time.Since(start)

	total := len(alchemy.ElementTypes())
	for _, r := range results {
		fmt.Printf("seed=%d discovered=%d/%d combinations=%d rejected=%d tiles=%d\n",
			r.Seed, len(r.Discovered), total, r.Combinations, r.Rejected, r.Tiles)
	}
	fmt.Println("Discovery coverage:")
	for _, tc := range sim.Coverage(results) {
		fmt.Printf("  %-12s %d/%d\n", tc.Type, tc.Sessions, len(results))
	}
	if best, ok := sim.Best(results); ok {
		fmt.Printf("Best session seed=%d discovered %d/%d types (%d combinations, %d tiles left)\n",
			best.Seed, len(best.Discovered), total, best.Combinations, best.Tiles)
		fmt.Printf("  %s\n", joinTypes(best.Discovered))
	}
	fmt.Printf("Completed in %s\n", elapsed.Round(time.Millisecond))
}

func printExploration(ex alchemy.Exploration) {
	byGen := make(map[int][]alchemy.ElementType)
	maxGen := 0
	for _, t := range ex.Order {
		g := ex.Generation[t]
		byGen[g] = append(byGen[g], t)
		if g > maxGen {
			maxGen = g
		}
	}
	for g := 0; g <= maxGen; g++ {
		fmt.Printf("gen %d: %s\n", g, joinTypes(byGen[g]))
	}
	if len(ex.Unreachable) > 0 {
		fmt.Printf("unreachable: %s\n", joinTypes(ex.Unreachable))
	}
}

func joinTypes(types []alchemy.ElementType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
