package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/chronoid/chronoid/catalog"
	"github.com/chronoid/chronoid/classify"
	"github.com/chronoid/chronoid/overlap"
	"github.com/chronoid/chronoid/rank"
)

// RenderResult prints one classification result for human consumption.
func RenderResult(reg *catalog.Registry, res classify.Result) {
	switch res.Status {
	case classify.NoMatch:
		pterm.Error.Printf("No known format matches %q\n", res.Input)

	case classify.Unique:
		pterm.Success.Printf("%s → %s\n", res.Input, pterm.LightCyan(res.Winner))
		if def, err := reg.Lookup(res.Winner); err == nil {
			pterm.Printf("  template: %s\n", def.Template)
			pterm.Printf("  category: %s\n", def.Category)
		}
		if res.OverrideApplied {
			pterm.Info.Println("Resolved by category priority")
		}
		if len(res.Candidates) > 1 {
			pterm.Printf("  also matched: %s\n", strings.Join(others(res.Candidates, res.Winner), ", "))
		}

	case classify.Ambiguous:
		pterm.Warning.Printf("%s is ambiguous between %d formats:\n", res.Input, len(res.Winners))
		for _, name := range res.Winners {
			if def, err := reg.Lookup(name); err == nil {
				pterm.Printf("  %s (%s, %s)\n", pterm.LightCyan(name), def.Template, def.Category)
			} else {
				pterm.Printf("  %s\n", pterm.LightCyan(name))
			}
		}
	}
}

func others(candidates []string, winner string) []string {
	var out []string
	for _, name := range candidates {
		if name != winner {
			out = append(out, name)
		}
	}
	return out
}

// RenderOverlaps prints the containment structure of the catalog: its
// equivalence classes and every strict subset edge between them.
func RenderOverlaps(g *overlap.Graph, spec *rank.Specificity) {
	pterm.DefaultSection.Printf("Equivalence classes (%d formats, %d classes)", len(g.Names()), g.NumClasses())

	table := pterm.TableData{{"Class", "Rank", "Length", "Formats"}}
	for c := 0; c < g.NumClasses(); c++ {
		v := spec.Class(c)
		table = append(table, []string{
			fmt.Sprintf("%d", c),
			fmt.Sprintf("%d", v.Depth),
			lengthProfile(g.Info(c)),
			strings.Join(g.ClassMembers(c), ", "),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()

	pterm.DefaultSection.Println("Strict containment")
	edges := 0
	for c := 0; c < g.NumClasses(); c++ {
		for _, super := range g.Supersets(c) {
			pterm.Printf("  %s ⊂ %s\n",
				pterm.LightCyan(strings.Join(g.ClassMembers(c), "/")),
				strings.Join(g.ClassMembers(super), "/"))
			edges++
		}
	}
	if edges == 0 {
		pterm.Info.Println("No containment between classes")
	}
}

func lengthProfile(info overlap.LanguageInfo) string {
	switch {
	case info.Fixed:
		return fmt.Sprintf("=%d", info.MinLen)
	case info.Bounded:
		return fmt.Sprintf("%d-%d", info.MinLen, info.MaxLen)
	default:
		return fmt.Sprintf("%d+", info.MinLen)
	}
}

// RenderCheck reports the outcome of validating and analyzing a catalog.
func RenderCheck(reg *catalog.Registry, g *overlap.Graph) {
	pterm.Success.Printf("Catalog valid: %d formats in %d equivalence classes\n", reg.Len(), g.NumClasses())

	for c := 0; c < g.NumClasses(); c++ {
		members := g.ClassMembers(c)
		if len(members) > 1 {
			pterm.Warning.Printf("Indistinguishable formats: %s\n", strings.Join(members, ", "))
		}
	}
}
