package overlap

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/chronoid/chronoid/automaton"
	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/errors"
	"github.com/chronoid/chronoid/logger"
)

// Options tunes the analysis batch.
type Options struct {
	// Workers is the number of goroutines comparing pattern pairs.
	// Zero or negative means runtime.NumCPU().
	Workers int
}

// Analyze proves the relation of every unordered format pair in the
// registry and returns the assembled overlap graph.
//
// Each pattern is determinized once over a single alphabet partition shared
// by the whole catalog, then the ~n²/2 pairwise comparisons are spread over
// a worker pool; every pair's relation is independent of every other's, so
// the workers share no mutable state beyond disjoint result slots. This is
// the dominant cost of loading a catalog and must happen once per catalog
// version, never on the per-input path.
func Analyze(ctx context.Context, reg *catalog.Registry, opts Options) (*Graph, error) {
	started := time.Now()

	defs := reg.All()
	n := len(defs)
	names := make([]string, n)
	nfas := make([]*automaton.NFA, n)
	for i, d := range defs {
		names[i] = d.Name
		nfas[i] = d.NFA()
	}

	ab := automaton.NewAlphabet(nfas)

	dfas := make([]*automaton.DFA, n)
	defInfo := make([]LanguageInfo, n)
	for i, nfa := range nfas {
		dfa, err := nfa.Determinize(ab)
		if err != nil {
			return nil, errors.Wrapf(err, "format %q", names[i])
		}
		dfa = dfa.Minimize()
		dfas[i] = dfa

		min, ok := dfa.MinLen()
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog,
				"format %q accepts no strings at all", names[i])
		}
		max, bounded := dfa.MaxLen()
		_, fixed := dfa.FixedLength()
		defInfo[i] = LanguageInfo{MinLen: min, MaxLen: max, Bounded: bounded, Fixed: fixed}
	}

	rel := make([][]Kind, n)
	for i := range rel {
		rel[i] = make([]Kind, n)
		rel[i][i] = Identical
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type pair struct{ i, j int }
	jobs := make(chan pair)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				// Distinct pairs write distinct matrix slots, no locking needed.
				k := fromOutcome(automaton.Compare(dfas[p.i], dfas[p.j]))
				rel[p.i][p.j] = k
				rel[p.j][p.i] = k.Invert()
			}
		}()
	}

	pairs := 0
feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case jobs <- pair{i, j}:
				pairs++
			case <-ctx.Done():
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "overlap analysis canceled")
	}

	g, err := assemble(names, rel, defInfo)
	if err != nil {
		return nil, err
	}

	logger.Debugw("overlap analysis complete",
		logger.FieldCount, n,
		logger.FieldPairs, pairs,
		logger.FieldClasses, g.NumClasses(),
		logger.FieldWorkers, workers,
		logger.FieldDurationMS, time.Since(started).Milliseconds(),
	)

	return g, nil
}
