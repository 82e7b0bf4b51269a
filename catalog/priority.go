package catalog

import (
	"github.com/chronoid/chronoid/errors"
)

// Priority is an optional catalog-supplied order over categories, best
// first. It is consumed only by the disambiguator's tie-break step: when
// several formats are tied at maximal specificity, a category strictly
// ahead of every other tied category wins. Categories absent from the order
// are unranked; a tie touching an unranked category stays ambiguous.
type Priority struct {
	rank map[Category]int
}

// NewPriority validates an ordered category list, best first. Unknown or
// repeated categories fail with an error wrapping errors.ErrInvalidCatalog.
func NewPriority(order []Category) (*Priority, error) {
	rank := make(map[Category]int, len(order))
	for i, c := range order {
		if !c.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "priority list has unknown category %q", c)
		}
		if _, dup := rank[c]; dup {
			return nil, errors.Wrapf(errors.ErrInvalidCatalog, "priority list repeats category %q", c)
		}
		rank[c] = i
	}
	return &Priority{rank: rank}, nil
}

// Rank returns the position of c in the order (0 is best). ok is false for
// unranked categories.
func (p *Priority) Rank(c Category) (int, bool) {
	if p == nil {
		return 0, false
	}
	r, ok := p.rank[c]
	return r, ok
}

// Empty reports whether no categories are ranked at all.
func (p *Priority) Empty() bool {
	return p == nil || len(p.rank) == 0
}
