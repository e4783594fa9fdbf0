package core

import (
	"slices"
	"strings"
)

// SortDirection is the order applied by Sort.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection maps "desc"/"descending" to Descending and anything
// else to Ascending.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// SortState is the active sort key and direction. An empty Key means no
// sort: records keep their input order.
type SortState struct {
	Key       string
	Direction SortDirection
}

// Toggle returns the state after the user activates key.
// Activating the current key while ascending flips to descending; any
// other activation sorts ascending by key.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction != Descending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Active reports whether a sort key is set.
func (s SortState) Active() bool {
	return s.Key != ""
}

// Sort returns a new slice ordered by state.
//
// Values are compared as raw strings, so "10" sorts before "2". A record
// missing the key compares equal to every other record. The sort is
// stable: records with equal keys keep their input order.
func Sort(records []Record, state SortState) []Record {
	out := cloneRecords(records)
	if !state.Active() {
		return out
	}

	slices.SortStableFunc(out, func(a, b Record) int {
		c := compareField(a, b, state.Key)
		if state.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

// compareField compares the raw values of field; absent values are neutral.
func compareField(a, b Record, field string) int {
	av, aok := a.Get(field)
	bv, bok := b.Get(field)
	if !aok || !bok {
		return 0
	}
	return strings.Compare(av, bv)
}
