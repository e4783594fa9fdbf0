package datasets

import "github.com/JonMunkholm/riskreport/internal/core"

// LostSemestersKey identifies the consecutive lost semesters dataset.
const LostSemestersKey = "lost_semesters"

func init() {
	registerLostSemesters()
}

func registerLostSemesters() {
	columns := append([]core.Column{}, identityColumns...)
	columns = append(columns,
		core.Column{Field: core.FieldLostSemesters, Label: "Semestres perdidos", Kind: core.ColumnCount, Sortable: true},
		core.Column{Field: core.FieldMostRecentPeriod, Label: "Periodo más reciente", Kind: core.ColumnPeriod, Sortable: true},
	)

	core.Register(core.DatasetDefinition{
		Info: core.DatasetInfo{
			Key:         LostSemestersKey,
			Label:       "Semestres Consecutivos Perdidos",
			Title:       "Estudiantes con Semestres Perdidos",
			Description: "Estudiantes que han perdido 2+ semestres consecutivos",
			File:        "estudiantes_semestres_perdidos_estado_normal.csv",
			ExportName:  "estudiantes_semestres_perdidos.xlsx",
			PayloadKey:  "failedSemestersData",
			Order:       2,
		},
		CodeField:  core.FieldStudentCode,
		LoginField: core.FieldLogin,
		Categories: sharedCategories,
		Columns:    columns,
	})
}
