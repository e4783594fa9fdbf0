package core

// ViewState is the complete interactive state of one dataset view: search
// text, categorical selections and sort. It is a value; every transition
// returns a new state and leaves the receiver untouched.
type ViewState struct {
	Query       string
	Constraints Constraints
	Sort        SortState
}

// WithQuery returns the state with the search text replaced.
func (v ViewState) WithQuery(q string) ViewState {
	next := v.clone()
	next.Query = q
	return next
}

// WithConstraint returns the state with field restricted to values.
// Passing no values clears the constraint.
func (v ViewState) WithConstraint(field string, values ...string) ViewState {
	next := v.clone()
	if len(values) == 0 {
		delete(next.Constraints, field)
		return next
	}
	next.Constraints[field] = NewValueSet(values...)
	return next
}

// ToggleValue returns the state with value added to or removed from the
// selection for field.
func (v ViewState) ToggleValue(field, value string) ViewState {
	next := v.clone()
	set := next.Constraints[field]
	if set == nil {
		set = make(ValueSet)
	}
	if set.Contains(value) {
		delete(set, value)
	} else {
		set[value] = struct{}{}
	}
	if len(set) == 0 {
		delete(next.Constraints, field)
	} else {
		next.Constraints[field] = set
	}
	return next
}

// ClearConstraint returns the state without any selection for field.
func (v ViewState) ClearConstraint(field string) ViewState {
	return v.WithConstraint(field)
}

// ToggleSort returns the state after the user activates the sort key.
func (v ViewState) ToggleSort(key string) ViewState {
	next := v.clone()
	next.Sort = v.Sort.Toggle(key)
	return next
}

// ResetSort returns the state with no sort applied.
func (v ViewState) ResetSort() ViewState {
	next := v.clone()
	next.Sort = SortState{}
	return next
}

// Selected reports whether value is selected for field.
func (v ViewState) Selected(field, value string) bool {
	return v.Constraints[field].Contains(value)
}

func (v ViewState) clone() ViewState {
	return ViewState{
		Query:       v.Query,
		Constraints: v.Constraints.Clone(),
		Sort:        v.Sort,
	}
}

// View is the result of applying a ViewState to a dataset.
type View struct {
	// Filtered is the matching records in dataset order. Exports use it.
	Filtered []Record
	// Rows is Filtered in display order.
	Rows  []Record
	Total int
	State ViewState
}

// Apply filters and sorts the dataset according to v.
func (v ViewState) Apply(d Dataset) View {
	filtered := Filter(d.records, d.Def.SearchFields(), v.Query, v.Constraints)
	return View{
		Filtered: filtered,
		Rows:     Sort(filtered, v.Sort),
		Total:    len(filtered),
		State:    v,
	}
}
