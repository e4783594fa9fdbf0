package core

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// Pipeline Benchmarks
// ============================================================================

// benchmarkCSV builds a lost-semesters style file with n data rows.
func benchmarkCSV(n int) string {
	var b strings.Builder
	b.WriteString("CODIGO_ESTUDIANTE,LOGIN,PROGRAMA_1,CLASIFICACION_BECAS_EXTENDIDA,NUM_SEMESTRES_PERDIDOS,PERIODO_MAS_RECIENTE_PERDIDO\n")
	programs := []string{"Medicina", "Derecho", "Economía", "Ingeniería de Sistemas"}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%09d,user.%d,%s,Sin beca,%d,2023%d\n", 201800000+i, i, programs[i%len(programs)], i%7, i%2+1)
	}
	return b.String()
}

// BenchmarkParse measures ingestion of a typical dataset.
func BenchmarkParse(b *testing.B) {
	raw := benchmarkCSV(5000)
	b.SetBytes(int64(len(raw)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Parse(raw)
	}
}

// BenchmarkFilter measures a search plus category filter pass.
func BenchmarkFilter(b *testing.B) {
	records := Parse(benchmarkCSV(5000))
	fields := SearchFields{Code: FieldStudentCode, Login: FieldLogin}
	constraints := Constraints{FieldProgram: NewValueSet("Medicina", "Derecho")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Filter(records, fields, "USER.4", constraints)
	}
}

// BenchmarkSort measures a descending sort on a numeric-looking column.
func BenchmarkSort(b *testing.B) {
	records := Parse(benchmarkCSV(5000))
	state := SortState{Key: FieldLostSemesters, Direction: Descending}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sort(records, state)
	}
}

// BenchmarkExport measures workbook generation.
func BenchmarkExport(b *testing.B) {
	records := Parse(benchmarkCSV(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Export(io.Discard, records); err != nil {
			b.Fatal(err)
		}
	}
}
