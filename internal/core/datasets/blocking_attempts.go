package datasets

import "github.com/JonMunkholm/riskreport/internal/core"

// BlockingAttemptsKey identifies the blocking-course dataset.
const BlockingAttemptsKey = "blocking_attempts"

func init() {
	registerBlockingAttempts()
}

func registerBlockingAttempts() {
	columns := append([]core.Column{}, identityColumns...)
	columns = append(columns, core.Column{
		Label: "Materias y número de intentos",
		Kind:  core.ColumnSubjects,
	})

	core.Register(core.DatasetDefinition{
		Info: core.DatasetInfo{
			Key:         BlockingAttemptsKey,
			Label:       "Estudiantes con Múltiples Intentos",
			Title:       "Estudiantes con Materias Bloqueantes",
			Description: "Estudiantes que han tomado materias 4+ veces",
			File:        "estudiantes_con_materia_bloqueante.csv",
			ExportName:  "estudiantes_materias_bloqueantes.xlsx",
			PayloadKey:  "multipleAttemptsData",
			Order:       1,
		},
		CodeField:  core.FieldStudentCode,
		LoginField: core.FieldLogin,
		Categories: sharedCategories,
		Columns:    columns,
	})
}
