package templates

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func lostDefinition() core.DatasetDefinition {
	return core.DatasetDefinition{
		Info:       core.DatasetInfo{Key: "lost", Label: "Semestres", Title: "Semestres perdidos"},
		CodeField:  core.FieldStudentCode,
		LoginField: core.FieldLogin,
		Categories: []core.Category{{Field: core.FieldProgram, Label: "Programa"}},
		Columns: []core.Column{
			{Field: core.FieldStudentCode, Label: "Código", Kind: core.ColumnCode, Sortable: true},
			{Field: core.FieldLogin, Label: "Login", Kind: core.ColumnProfile},
			{Field: core.FieldLostSemesters, Label: "Semestres perdidos", Kind: core.ColumnCount, Sortable: true},
			{Field: core.FieldMostRecentPeriod, Label: "Periodo", Kind: core.ColumnPeriod},
		},
	}
}

func dashboardData(rows ...core.Record) DashboardData {
	def := lostDefinition()
	state := core.ViewState{}.WithConstraint(core.FieldProgram, "Medicina").ToggleSort(core.FieldLostSemesters)
	return DashboardData{
		Tabs: []Tab{
			{Info: core.DatasetInfo{Key: "blocking", Label: "Bloqueos"}, Count: 4, Href: "/?tab=blocking"},
			{Info: def.Info, Count: len(rows), Href: "/?tab=lost", Active: true},
		},
		Def:         def,
		View:        core.View{Filtered: rows, Rows: rows, Total: len(rows), State: state},
		Options:     []FilterOptions{{Category: def.Categories[0], Values: []string{"Derecho", "Medicina"}}},
		ProfileBase: "https://profiles.example/",
		ExportHref:  "/api/export/lost",
		ResetHref:   "/?tab=lost",
		SortHref:    func(field string) string { return "/?tab=lost&sort=" + field },
		LoadedAt:    time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestDashboard_CountKeepsRawText(t *testing.T) {
	rows := []core.Record{
		core.RecordOf(core.FieldStudentCode, "1", core.FieldLostSemesters, "03"),
		core.RecordOf(core.FieldStudentCode, "2", core.FieldLostSemesters, "2"),
		core.RecordOf(core.FieldStudentCode, "3", core.FieldLostSemesters, "n/a"),
	}
	body := render(t, Dashboard(dashboardData(rows...)))

	assert.Contains(t, body, `<span class="severity-high">03</span>`)
	assert.Contains(t, body, `<span class="severity-moderate">2</span>`)
	assert.Contains(t, body, `<td>n/a</td>`)
	assert.NotContains(t, body, `"severity-high">3<`)
}

func TestDashboard_Chrome(t *testing.T) {
	row := core.RecordOf(
		core.FieldStudentCode, "201800003",
		core.FieldLogin, "f.mora",
		core.FieldLostSemesters, "3",
		core.FieldMostRecentPeriod, "20241",
	)
	body := render(t, Dashboard(dashboardData(row)))

	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, "<title>Semestres perdidos</title>")
	assert.Contains(t, body, `<a href="/?tab=lost" class="active">Semestres <span class="badge">1</span></a>`)
	assert.Contains(t, body, `<a href="/?tab=blocking">Bloqueos <span class="badge">4</span></a>`)
	assert.Contains(t, body, `<input type="checkbox" name="filter[PROGRAMA_1]" value="Medicina" checked>`)
	assert.Contains(t, body, `<input type="checkbox" name="filter[PROGRAMA_1]" value="Derecho">`)
	assert.Contains(t, body, `<input type="hidden" name="sort" value="NUM_SEMESTRES_PERDIDOS">`)
	assert.Contains(t, body, `Semestres perdidos ▲</a>`)
	assert.Contains(t, body, `href="https://profiles.example/f.mora"`)
	assert.Contains(t, body, "<td>2024-1</td>")
	assert.Contains(t, body, "Mostrando 1 estudiantes")
	assert.Contains(t, body, "Datos cargados 2024-03-01 08:30:00")
	assert.Contains(t, body, `href="/api/export/lost" download`)
}

func TestDashboard_NoRows(t *testing.T) {
	body := render(t, Dashboard(dashboardData()))

	assert.Contains(t, body, "No se encontraron estudiantes")
	assert.NotContains(t, body, "<table>")
}

func TestDashboard_SubjectBadges(t *testing.T) {
	data := dashboardData(core.RecordOf(
		core.FieldStudentCode, "201912345",
		core.SubjectField(1), "Cálculo I", core.AttemptsField(1), "4",
		core.SubjectField(2), "Química",
	))
	data.Def.Columns = []core.Column{{Label: "Materias", Kind: core.ColumnSubjects}}

	body := render(t, Dashboard(data))
	assert.Contains(t, body, `<span class="badge">Cálculo I (4 intentos)</span><span class="badge">Química</span>`)
}

func TestErrorPage(t *testing.T) {
	body := render(t, ErrorPage("No se pudieron cargar los datos", "Intente de nuevo", "SRC001"))

	assert.Contains(t, body, `<div class="alert" role="alert"><strong>No se pudieron cargar los datos</strong>`)
	assert.Contains(t, body, "<p>Intente de nuevo</p>")
	assert.Contains(t, body, "Código: SRC001")

	bare := render(t, ErrorPage("<b>fallo</b>", "", ""))
	assert.Contains(t, bare, "&lt;b&gt;fallo&lt;/b&gt;")
	assert.NotContains(t, bare, "Código:")
}
