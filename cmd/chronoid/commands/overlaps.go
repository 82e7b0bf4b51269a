package commands

import (
	"github.com/spf13/cobra"

	"github.com/chronoid/chronoid/display"
	"github.com/chronoid/chronoid/overlap"
	"github.com/chronoid/chronoid/rank"
)

// OverlapsCmd shows the containment structure of the catalog.
var OverlapsCmd = &cobra.Command{
	Use:   "overlaps",
	Short: "Show the containment structure of the catalog",
	Long: `Analyze the catalog and show how the format languages relate.

Formats whose patterns accept exactly the same strings are grouped into
one equivalence class. Classes whose language is strictly contained in
another class's language are listed as containment edges; those edges
decide which format wins when several match the same input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}

		g := engine.Graph()
		spec := engine.Ranks()

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(overlapReport(g, spec))
		}
		display.RenderOverlaps(g, spec)
		return nil
	},
}

type classReport struct {
	Class      int      `json:"class"`
	Formats    []string `json:"formats"`
	Depth      int      `json:"depth"`
	Structural int      `json:"structural"`
	MinLen     int      `json:"min_len"`
	MaxLen     int      `json:"max_len,omitempty"`
	Fixed      bool     `json:"fixed_length"`
	Bounded    bool     `json:"bounded"`
}

type containmentEdge struct {
	Subset   []string `json:"subset"`
	Superset []string `json:"superset"`
}

type analysisReport struct {
	Formats int               `json:"formats"`
	Classes []classReport     `json:"classes"`
	Edges   []containmentEdge `json:"containment"`
}

func overlapReport(g *overlap.Graph, spec *rank.Specificity) analysisReport {
	report := analysisReport{Formats: len(g.Names())}
	for c := 0; c < g.NumClasses(); c++ {
		info := g.Info(c)
		v := spec.Class(c)
		report.Classes = append(report.Classes, classReport{
			Class:      c,
			Formats:    g.ClassMembers(c),
			Depth:      v.Depth,
			Structural: v.Structural,
			MinLen:     info.MinLen,
			MaxLen:     info.MaxLen,
			Fixed:      info.Fixed,
			Bounded:    info.Bounded,
		})
		for _, super := range g.Supersets(c) {
			report.Edges = append(report.Edges, containmentEdge{
				Subset:   g.ClassMembers(c),
				Superset: g.ClassMembers(super),
			})
		}
	}
	return report
}
