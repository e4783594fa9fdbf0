package datasets

import (
	"testing"

	"github.com/JonMunkholm/riskreport/internal/core"
)

func TestRegisteredDatasets(t *testing.T) {
	all := core.All()
	if len(all) != 2 {
		t.Fatalf("registered %d datasets, want 2", len(all))
	}

	tests := []struct {
		key        string
		file       string
		exportName string
		payloadKey string
	}{
		{BlockingAttemptsKey, "estudiantes_con_materia_bloqueante.csv", "estudiantes_materias_bloqueantes.xlsx", "multipleAttemptsData"},
		{LostSemestersKey, "estudiantes_semestres_perdidos_estado_normal.csv", "estudiantes_semestres_perdidos.xlsx", "failedSemestersData"},
	}

	for i, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			def := all[i]
			if def.Info.Key != tt.key {
				t.Fatalf("position %d holds %q, want %q", i, def.Info.Key, tt.key)
			}
			if def.Info.File != tt.file {
				t.Errorf("File = %q, want %q", def.Info.File, tt.file)
			}
			if core.ExportFilename(def.Info.ExportName) != tt.exportName {
				t.Errorf("ExportName = %q, want %q", def.Info.ExportName, tt.exportName)
			}
			if def.Info.PayloadKey != tt.payloadKey {
				t.Errorf("PayloadKey = %q, want %q", def.Info.PayloadKey, tt.payloadKey)
			}
			if def.CodeField != core.FieldStudentCode || def.LoginField != core.FieldLogin {
				t.Errorf("search fields = %q/%q", def.CodeField, def.LoginField)
			}
			if !def.IsCategory(core.FieldProgram) || !def.IsCategory(core.FieldFunding) {
				t.Error("program and funding must be categorical filters")
			}
		})
	}
}

func TestLostSemestersSortableColumns(t *testing.T) {
	def, ok := core.Get(LostSemestersKey)
	if !ok {
		t.Fatal("lost semesters dataset not registered")
	}

	want := []string{core.FieldStudentCode, core.FieldLostSemesters, core.FieldMostRecentPeriod}
	got := def.SortableFields()
	if len(got) != len(want) {
		t.Fatalf("SortableFields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortableFields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumnsDoNotShareBacking(t *testing.T) {
	blocking, _ := core.Get(BlockingAttemptsKey)
	lost, _ := core.Get(LostSemestersKey)

	if blocking.Columns[len(blocking.Columns)-1].Kind != core.ColumnSubjects {
		t.Error("blocking dataset must end with the subjects column")
	}
	if lost.Columns[2].Kind != core.ColumnCount {
		t.Errorf("lost semesters column 2 kind = %v, want count", lost.Columns[2].Kind)
	}
}
