// Package roster processes the ability pages of many champions at once.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/and-zheng/lolstaticdata/internal/ability"
	"github.com/and-zheng/lolstaticdata/internal/pages"
)

// Result holds the processed abilities of one champion, keyed by slot.
type Result struct {
	Champion  string                       `json:"champion"`
	Abilities map[string][]ability.Ability `json:"abilities"`
}

// Runner processes manifest entries against a page cache.
type Runner struct {
	pages   *pages.Cache
	proc    *ability.Processor
	missing map[string][]string
	workers int
}

// NewRunner creates a Runner. missing maps a champion to ability pages that
// the wiki lists but never published; they are skipped instead of failing
// the champion. workers bounds the number of champions processed at once.
func NewRunner(cache *pages.Cache, proc *ability.Processor, missing map[string][]string, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		pages:   cache,
		proc:    proc,
		missing: missing,
		workers: workers,
	}
}

// Run processes every champion of the manifest. Results keep manifest order.
// The first failing champion cancels the rest.
func (r *Runner) Run(ctx context.Context, m Manifest) ([]Result, error) {
	results := make([]Result, len(m.Champions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, ch := range m.Champions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Champion(ch)
			if err != nil {
				return fmt.Errorf("champion %s: %w", ch.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("roster processed", "champions", len(results))
	return results, nil
}

// Champion processes the abilities of a single champion.
func (r *Runner) Champion(ch Champion) (Result, error) {
	res := Result{
		Champion:  ch.Name,
		Abilities: make(map[string][]ability.Ability, len(Slots)),
	}
	dir := pageDir(ch.Name)

	for _, slot := range Slots {
		names := slotAbilities(ch.Abilities, slot)
		seen := make(map[[blake2b.Size256]byte]ability.Ability, len(names))
		list := make([]ability.Ability, 0, len(names))

		for _, name := range names {
			if slices.Contains(r.missing[ch.Name], name) {
				slog.Debug("skipping unpublished ability page", "champion", ch.Name, "ability", name)
				continue
			}

			rows, err := r.pages.Ability(dir, name)
			if err != nil {
				return Result{}, fmt.Errorf("%s: %w", name, err)
			}
			a, err := r.proc.Process(rows)
			if err != nil {
				return Result{}, err
			}

			// The same page is often published under two names.
			fp, err := a.Fingerprint()
			if err != nil {
				return Result{}, err
			}
			if prev, dup := seen[fp]; dup && prev.Equal(a) {
				slog.Debug("skipping duplicate ability", "champion", ch.Name, "ability", name)
				continue
			}
			seen[fp] = a
			list = append(list, a)
		}
		res.Abilities[slot] = list
	}
	return res, nil
}

func slotAbilities(abilities map[string][]string, slot string) []string {
	for k, v := range abilities {
		if strings.EqualFold(k, slot) {
			return v
		}
	}
	return nil
}
