package core

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValueSet is the set of accepted values for one categorical constraint.
type ValueSet map[string]struct{}

// NewValueSet builds a set from values.
func NewValueSet(values ...string) ValueSet {
	s := make(ValueSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set.
func (s ValueSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members sorted.
func (s ValueSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Constraints maps a field name to its accepted values.
// A field with an empty set is unconstrained.
type Constraints map[string]ValueSet

// Clone returns a deep copy.
func (c Constraints) Clone() Constraints {
	out := make(Constraints, len(c))
	for field, set := range c {
		cp := make(ValueSet, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		out[field] = cp
	}
	return out
}

// Active returns the fields with a non-empty selection, sorted.
func (c Constraints) Active() []string {
	var out []string
	for field, set := range c {
		if len(set) > 0 {
			out = append(out, field)
		}
	}
	sort.Strings(out)
	return out
}

// Filters is the serializable form of Constraints.
type Filters map[string][]string

// Filters returns the active selections with sorted values.
func (c Constraints) Filters() Filters {
	out := make(Filters, len(c))
	for _, field := range c.Active() {
		out[field] = c[field].Values()
	}
	return out
}

// Match reports whether r satisfies every constraint.
func (c Constraints) Match(r Record) bool {
	for field, set := range c {
		if len(set) == 0 {
			continue
		}
		v, ok := r.Get(field)
		if !ok || !set.Contains(v) {
			return false
		}
	}
	return true
}

// SearchFields names the fields the free-text query looks at.
type SearchFields struct {
	Code  string // substring match, case-sensitive
	Login string // substring match, case-insensitive
}

// MatchQuery reports whether r matches the free-text query.
// An empty query matches everything; an absent field never matches.
func (f SearchFields) MatchQuery(r Record, query string) bool {
	if query == "" {
		return true
	}
	if code, ok := r.Get(f.Code); ok && strings.Contains(code, query) {
		return true
	}
	if login, ok := r.Get(f.Login); ok {
		lower := cases.Lower(language.Und)
		if strings.Contains(lower.String(login), lower.String(query)) {
			return true
		}
	}
	return false
}

// Filter returns the records that match query and every constraint, in
// their original relative order. The input is never modified.
func Filter(records []Record, fields SearchFields, query string, constraints Constraints) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !constraints.Match(r) {
			continue
		}
		if !fields.MatchQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DistinctValues returns the sorted non-empty values of field across records.
func DistinctValues(records []Record, field string) []string {
	seen := make(ValueSet)
	for _, r := range records {
		if v := r.Value(field); v != "" {
			seen[v] = struct{}{}
		}
	}
	return seen.Values()
}
