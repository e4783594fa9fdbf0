// Package templates renders the report pages as templ components.
package templates

import (
	"time"

	"github.com/JonMunkholm/riskreport/internal/core"
)

// Tab is one entry of the dataset tab bar.
type Tab struct {
	Info   core.DatasetInfo
	Count  int
	Href   string
	Active bool
}

// FilterOptions lists the values offered for one categorical filter.
type FilterOptions struct {
	Category core.Category
	Values   []string
}

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Tabs    []Tab
	Def     core.DatasetDefinition
	View    core.View
	Options []FilterOptions

	// ProfileBase is prefixed to the login for profile links.
	ProfileBase string

	ExportHref string
	ResetHref  string
	// SortHref returns the link that toggles the sort on field.
	SortHref func(field string) string

	LoadedAt time.Time
}

func filterName(field string) string {
	return "filter[" + field + "]"
}

func sortIndicator(s core.SortState, field string) string {
	if s.Key != field {
		return ""
	}
	if s.Direction == core.Descending {
		return "▼"
	}
	return "▲"
}

func attemptLabel(a core.BlockingAttempt) string {
	if a.Attempts == "" {
		return a.Subject
	}
	return a.Subject + " (" + a.Attempts + " intentos)"
}

// severityClass returns the badge class for a raw lost semester count, or
// "" when raw is not a count.
func severityClass(raw string) string {
	sev, ok := core.CountSeverity(raw)
	if !ok {
		return ""
	}
	return "severity-" + string(sev)
}
