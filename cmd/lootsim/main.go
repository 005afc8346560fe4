// lootsim runs sampling trials against the library: weighted-draw convergence
// over a small loot table, and shuffle frequency counts over a short deck.
// Configured entirely from the environment, see internal/conf.
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/orbitalgames/collections-extensions/collections"
	"github.com/orbitalgames/collections-extensions/internal/conf"
	"github.com/orbitalgames/collections-extensions/internal/log"
	"github.com/orbitalgames/collections-extensions/linkedlist"
	"github.com/orbitalgames/collections-extensions/random"
)

func main() {
	defer log.DefaultGlobals()()
	ctx := context.Background()

	cfg, err := conf.ParseEnv()
	if err != nil {
		log.Fatal(ctx, "failed to parse config from env", zap.Error(err))
	}

	src := random.Default()
	if cfg.Seed != 0 {
		src = random.NewSeeded(cfg.Seed)
	}

	if err := drawTrial(ctx, cfg, src); err != nil {
		log.Fatal(ctx, "draw trial failed", zap.Error(err))
	}
	if err := shuffleTrial(ctx, cfg, src); err != nil {
		log.Fatal(ctx, "shuffle trial failed", zap.Error(err))
	}
}

type drop struct {
	name  string
	count int
}

// drawTrial draws from a fixed loot table and reports the observed frequency
// of every item that came up, least frequent first.
func drawTrial(ctx context.Context, cfg *conf.Sim, src random.Source) error {
	ctx = log.With(ctx, zap.String("trial", "draw"))

	table := random.Weighted[string]{
		{Weight: 70, Item: "common"},
		{Weight: 25, Item: "rare"},
		{Weight: 5, Item: "epic"},
		{Weight: 0, Item: "mythic"},
	}

	counts := map[string]int{}
	for i := 0; i < cfg.Draws; i++ {
		item, err := table.Pick(src)
		if err != nil {
			return fmt.Errorf("pick: %w", err)
		}
		counts[item]++
	}

	drops := linkedlist.New[drop]()
	for _, entry := range table {
		drops.PushBack(drop{name: entry.Item, count: collections.GetOrDefault(counts, entry.Item, 0)})
	}
	if err := linkedlist.SortBy(drops, func(d drop) int { return d.count }); err != nil {
		return fmt.Errorf("sort drops: %w", err)
	}

	// Prune never-seen items while reporting the rest; the walker stays valid
	// across the removals.
	w := drops.Walk()
	for w.Next() {
		d := w.Value()
		if d.count == 0 {
			drops.Remove(w.Handle())
			continue
		}
		log.Info(ctx, "drop frequency",
			zap.String("item", d.name),
			zap.Int("count", d.count),
			zap.Float64("observed", float64(d.count)/float64(cfg.Draws)))
	}

	log.Info(ctx, "draw trial done",
		zap.Int("draws", cfg.Draws),
		zap.Int("items_seen", drops.Len()))
	return nil
}

// shuffleTrial shuffles a small deck repeatedly and reports how evenly the
// permutations are hit.
func shuffleTrial(ctx context.Context, cfg *conf.Sim, src random.Source) error {
	ctx = log.With(ctx, zap.String("trial", "shuffle"), zap.Bool("secure", cfg.Secure))

	deck := make([]int, cfg.DeckSize)
	for i := range deck {
		deck[i] = i + 1
	}

	freq := map[string]int{}
	for i := 0; i < cfg.ShuffleTrials; i++ {
		var hand []int
		if cfg.Secure {
			hand = append([]int(nil), deck...)
			if err := random.SecureShuffle(hand); err != nil {
				return fmt.Errorf("secure shuffle: %w", err)
			}
		} else {
			hand = random.ShuffleCopy(deck, src)
		}
		freq[collections.Join(hand, "-")]++
	}

	least, most := cfg.ShuffleTrials, 0
	for _, n := range freq {
		if n < least {
			least = n
		}
		if n > most {
			most = n
		}
	}

	log.Info(ctx, "shuffle trial done",
		zap.Int("trials", cfg.ShuffleTrials),
		zap.Int("deck_size", cfg.DeckSize),
		zap.Int("permutations_seen", len(freq)),
		zap.Int("least_hit", least),
		zap.Int("most_hit", most))
	return nil
}
