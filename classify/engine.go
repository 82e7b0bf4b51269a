package classify

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/logger"
	"github.com/chronoid/chronoid/overlap"
	"github.com/chronoid/chronoid/rank"
)

// snapshot bundles everything a classification needs. It is immutable
// once published, so readers never see a half-reloaded catalog.
type snapshot struct {
	reg  *catalog.Registry
	g    *overlap.Graph
	spec *rank.Specificity
	prio *catalog.Priority
}

// Engine classifies inputs against a catalog that can be swapped at
// runtime. Classify and Reload may be called concurrently; a reload
// that fails leaves the previous catalog in place.
type Engine struct {
	cur atomic.Pointer[snapshot]
}

// NewEngine validates the definitions, runs the overlap analysis and
// returns a ready engine.
func NewEngine(ctx context.Context, defs []catalog.FormatDefinition, prio *catalog.Priority, opts overlap.Options) (*Engine, error) {
	e := &Engine{}
	if err := e.Reload(ctx, defs, prio, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload builds a fresh snapshot from defs and atomically publishes it.
// On error the engine keeps serving the previous snapshot.
func (e *Engine) Reload(ctx context.Context, defs []catalog.FormatDefinition, prio *catalog.Priority, opts overlap.Options) error {
	start := time.Now()

	reg, err := catalog.Load(defs)
	if err != nil {
		return err
	}
	g, err := overlap.Analyze(ctx, reg, opts)
	if err != nil {
		return err
	}

	e.cur.Store(&snapshot{
		reg:  reg,
		g:    g,
		spec: rank.Build(g),
		prio: prio,
	})

	logger.Infow("catalog loaded",
		logger.FieldCount, reg.Len(),
		logger.FieldClasses, g.NumClasses(),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

// Classify identifies input against the current catalog snapshot.
func (e *Engine) Classify(input string) (Result, error) {
	s := e.cur.Load()
	return Classify(s.reg, s.g, s.spec, s.prio, input)
}

// Registry returns the currently published catalog.
func (e *Engine) Registry() *catalog.Registry {
	return e.cur.Load().reg
}

// Graph returns the currently published overlap analysis.
func (e *Engine) Graph() *overlap.Graph {
	return e.cur.Load().g
}

// Ranks returns the currently published specificity ranks.
func (e *Engine) Ranks() *rank.Specificity {
	return e.cur.Load().spec
}
