package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/JonMunkholm/riskreport/internal/logging"
	"github.com/JonMunkholm/riskreport/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// loadFailedMessage is the only detail clients get when the snapshot fails.
const loadFailedMessage = "Failed to load data"

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleData returns every dataset in one payload:
//
//	{"multipleAttemptsData":[...],"failedSemestersData":[...]}
//
// Any source failure yields a single opaque error and no partial data.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	payload, err := s.service.Payload(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("load data", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: loadFailedMessage})
		return
	}
	writeJSON(w, r, http.StatusOK, payload)
}

// handleListDatasets returns the registered datasets in tab order.
func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.service.ListDatasets())
}

// datasetResponse is the JSON shape of one queried dataset.
type datasetResponse struct {
	Dataset string        `json:"dataset"`
	Total   int           `json:"total"`
	Query   string        `json:"query"`
	Filters core.Filters  `json:"filters"`
	Sort    *sortResponse `json:"sort,omitempty"`
	Rows    []core.Record `json:"rows"`
}

type sortResponse struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// handleDataset returns the filtered and sorted rows of one dataset.
func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")
	def, ok := core.Get(key)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: %s", core.ErrUnknownDataset, key), http.StatusNotFound)
		return
	}

	view, err := s.service.Query(r.Context(), key, parseViewState(r, def))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	resp := datasetResponse{
		Dataset: key,
		Total:   view.Total,
		Query:   view.State.Query,
		Filters: view.State.Constraints.Filters(),
		Rows:    view.Rows,
	}
	if view.State.Sort.Active() {
		resp.Sort = &sortResponse{Key: view.State.Sort.Key, Direction: string(view.State.Sort.Direction)}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// handleExport streams the filtered rows of a dataset as an xlsx attachment.
// The workbook is built in memory first so a failure can still produce an
// error status.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")
	def, ok := core.Get(key)
	if !ok {
		s.respondError(w, r, fmt.Errorf("%w: %s", core.ErrUnknownDataset, key), http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	res, err := s.service.Export(r.Context(), &buf, key, parseViewState(r, def))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", core.SpreadsheetContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Export-Rows", strconv.Itoa(res.Rows))
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).Warn("export write interrupted", "dataset", key, "error", err)
	}
}

// handleDashboard renders the report page for the selected tab.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := s.service.Snapshot(ctx)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	datasets := snap.Datasets()
	if len(datasets) == 0 {
		s.respondError(w, r, fmt.Errorf("%w: no datasets registered", core.ErrUnknownDataset), http.StatusNotFound)
		return
	}

	active := datasets[0]
	if tab := r.URL.Query().Get(paramTab); tab != "" {
		d, ok := snap.Dataset(tab)
		if !ok {
			s.respondError(w, r, fmt.Errorf("%w: %s", core.ErrUnknownDataset, tab), http.StatusNotFound)
			return
		}
		active = d
	}

	state := parseViewState(r, active.Def)
	view := state.Apply(active)

	tabs := make([]templates.Tab, len(datasets))
	for i, d := range datasets {
		tabs[i] = templates.Tab{
			Info:   d.Def.Info,
			Count:  d.Len(),
			Href:   dashboardHref(d.Def.Info.Key, core.ViewState{}),
			Active: d.Def.Info.Key == active.Def.Info.Key,
		}
	}

	options := make([]templates.FilterOptions, len(active.Def.Categories))
	records := active.Records()
	for i, c := range active.Def.Categories {
		options[i] = templates.FilterOptions{
			Category: c,
			Values:   core.DistinctValues(records, c.Field),
		}
	}

	key := active.Def.Info.Key
	page := templates.DashboardData{
		Tabs:        tabs,
		Def:         active.Def,
		View:        view,
		Options:     options,
		ProfileBase: s.cfg.Profile.URLBase,
		ExportHref:  exportHref(key, state),
		SortHref: func(field string) string {
			return dashboardHref(key, state.ToggleSort(field))
		},
		ResetHref: dashboardHref(key, core.ViewState{}),
		LoadedAt:  snap.LoadedAt,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(page).Render(ctx, w); err != nil {
		logging.FromContext(ctx).Error("render dashboard", "error", err)
	}
}
