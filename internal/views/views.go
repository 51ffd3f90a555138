// Package views computes read-only projections of a collection. Every
// function is pure and cheap enough to recompute on each render; there is
// deliberately no caching or invalidation.
package views

import (
	"github.com/curioterm/curio/internal/schema"
	"github.com/curioterm/curio/internal/store"
)

// FilterBool keeps the entities whose bool field equals want.
func FilterBool(entities []store.Entity, field string, want bool) []store.Entity {
	out := make([]store.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Bool(field) == want {
			out = append(out, e)
		}
	}
	return out
}

// CountBool counts the entities whose bool field equals want.
func CountBool(entities []store.Entity, field string, want bool) int {
	n := 0
	for _, e := range entities {
		if e.Bool(field) == want {
			n++
		}
	}
	return n
}

// MaxNumber returns the largest value of a number field, used to scale
// bar renderings. An empty collection yields 0.
func MaxNumber(entities []store.Entity, field string) float64 {
	max := 0.0
	for _, e := range entities {
		if v := e.Number(field); v > max {
			max = v
		}
	}
	return max
}

// SumNumber totals a number field across the collection.
func SumNumber(entities []store.Entity, field string) float64 {
	sum := 0.0
	for _, e := range entities {
		sum += e.Number(field)
	}
	return sum
}

// Apply projects the collection through a view spec.
func Apply(spec schema.ViewSpec, entities []store.Entity) []store.Entity {
	switch spec.Op {
	case schema.ViewWhereTrue:
		return FilterBool(entities, spec.Field, true)
	case schema.ViewWhereFalse:
		return FilterBool(entities, spec.Field, false)
	default:
		return entities
	}
}
