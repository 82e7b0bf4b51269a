// Package classify identifies which catalog format produced a timestamp
// string. Every format is tried against the input; ties between matching
// formats are broken by specificity rank and, optionally, by a
// category priority list supplied with the catalog.
package classify

import (
	"encoding/json"

	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/logger"
	"github.com/chronoid/chronoid/overlap"
	"github.com/chronoid/chronoid/rank"
)

// Status is the outcome of classifying one input.
type Status int

const (
	// NoMatch means no catalog format accepts the input.
	NoMatch Status = iota
	// Unique means exactly one format survived the tie breakers.
	Unique
	// Ambiguous means several formats remain equally plausible.
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case NoMatch:
		return "no_match"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Result reports everything the classifier learned about one input.
// Candidates and Winners preserve catalog registration order.
type Result struct {
	Input           string   `json:"input"`
	Status          Status   `json:"status"`
	Candidates      []string `json:"candidates"`
	Winners         []string `json:"winners"`
	Winner          string   `json:"winner,omitempty"`
	OverrideApplied bool     `json:"override_applied,omitempty"`
}

// Candidates returns the names of every format whose pattern accepts
// input, in registration order. All formats are tried; an early match
// never stops the scan.
func Candidates(reg *catalog.Registry, input string) []string {
	var out []string
	for _, def := range reg.All() {
		if def.Matches(input) {
			out = append(out, def.Name)
		}
	}
	return out
}

// Classify runs the full pipeline for one input: collect candidates,
// keep the maximal specificity tier, then attempt the category priority
// override if the tier still holds more than one format.
func Classify(reg *catalog.Registry, g *overlap.Graph, spec *rank.Specificity, prio *catalog.Priority, input string) (Result, error) {
	res := Result{Input: input}

	res.Candidates = Candidates(reg, input)
	if len(res.Candidates) == 0 {
		res.Status = NoMatch
		return res, nil
	}

	winners, err := topTier(spec, res.Candidates)
	if err != nil {
		return Result{}, err
	}
	res.Winners = winners

	if len(winners) == 1 {
		res.Status = Unique
		res.Winner = winners[0]
		return res, nil
	}

	if winner, ok := applyPriority(reg, prio, winners); ok {
		res.Status = Unique
		res.Winner = winner
		res.OverrideApplied = true
		return res, nil
	}

	res.Status = Ambiguous
	classes := make(map[int]bool, len(winners))
	for _, name := range winners {
		if c, ok := g.ClassOf(name); ok {
			classes[c] = true
		}
	}
	logger.Debugw("ambiguous input",
		logger.FieldInput, input,
		logger.FieldWinners, winners,
		logger.FieldClasses, len(classes),
	)
	return res, nil
}

// topTier keeps the candidates whose rank equals the maximum over all
// candidates, preserving their order.
func topTier(spec *rank.Specificity, candidates []string) ([]string, error) {
	values := make([]rank.Value, len(candidates))
	best := 0
	for i, name := range candidates {
		v, err := spec.Of(name)
		if err != nil {
			return nil, err
		}
		values[i] = v
		if v.Compare(values[best]) > 0 {
			best = i
		}
	}

	var tier []string
	for i, name := range candidates {
		if values[i].Compare(values[best]) == 0 {
			tier = append(tier, name)
		}
	}
	return tier, nil
}

// applyPriority resolves a tie by category priority. The override only
// fires when every tied format's category appears in the priority list
// and exactly one format belongs to the best-ranked category among them.
func applyPriority(reg *catalog.Registry, prio *catalog.Priority, winners []string) (string, bool) {
	if prio.Empty() {
		return "", false
	}

	bestRank := -1
	bestName := ""
	bestCount := 0
	for _, name := range winners {
		def, err := reg.Lookup(name)
		if err != nil {
			return "", false
		}
		r, ok := prio.Rank(def.Category)
		if !ok {
			return "", false
		}
		switch {
		case bestRank < 0 || r < bestRank:
			bestRank = r
			bestName = name
			bestCount = 1
		case r == bestRank:
			bestCount++
		}
	}
	if bestCount != 1 {
		return "", false
	}
	return bestName, true
}
