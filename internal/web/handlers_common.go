// This file contains the query-string encoding of view state shared by the
// dashboard, the dataset API and exports.
package web

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/JonMunkholm/riskreport/internal/core"
)

// Query parameter names.
const (
	paramTab    = "tab"
	paramQuery  = "q"
	paramSort   = "sort"
	paramDir    = "dir"
	filterParam = "filter["
)

// parseViewState reads the view state for def from the request URL.
//
//	?q=ana&sort=NUM_SEMESTRES_PERDIDOS&dir=desc&filter[PROGRAMA_1]=Medicina&filter[PROGRAMA_1]=Derecho
//
// Unknown filter fields and unsortable sort keys are ignored so a stale link
// still renders.
func parseViewState(r *http.Request, def core.DatasetDefinition) core.ViewState {
	q := r.URL.Query()

	state := core.ViewState{}.WithQuery(strings.TrimSpace(q.Get(paramQuery)))

	for name, values := range q {
		field, ok := filterField(name)
		if !ok || !def.IsCategory(field) {
			continue
		}
		state = state.WithConstraint(field, values...)
	}

	if key := q.Get(paramSort); key != "" && slices.Contains(def.SortableFields(), key) {
		state.Sort = core.SortState{Key: key, Direction: core.ParseSortDirection(q.Get(paramDir))}
	}

	return state
}

// filterField extracts FIELD from a "filter[FIELD]" parameter name.
func filterField(name string) (string, bool) {
	if !strings.HasPrefix(name, filterParam) || !strings.HasSuffix(name, "]") {
		return "", false
	}
	field := name[len(filterParam) : len(name)-1]
	return field, field != ""
}

// encodeViewState is the inverse of parseViewState.
func encodeViewState(state core.ViewState) url.Values {
	v := url.Values{}
	if state.Query != "" {
		v.Set(paramQuery, state.Query)
	}
	for _, field := range state.Constraints.Active() {
		v[filterParam+field+"]"] = state.Constraints[field].Values()
	}
	if state.Sort.Active() {
		v.Set(paramSort, state.Sort.Key)
		v.Set(paramDir, string(state.Sort.Direction))
	}
	return v
}

// dashboardHref builds the dashboard link for tab in state.
func dashboardHref(tab string, state core.ViewState) string {
	v := encodeViewState(state)
	v.Set(paramTab, tab)
	return "/?" + v.Encode()
}

// exportHref builds the export link for the filtered rows of state.
// Sort is dropped since exports keep dataset order.
func exportHref(key string, state core.ViewState) string {
	u := "/api/export/" + url.PathEscape(key)
	if enc := encodeViewState(state.ResetSort()).Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
