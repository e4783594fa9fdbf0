// Package core provides the business logic for the student risk report.
//
// This package has no UI dependencies. The web server and the riskctl CLI
// both drive it through [Service].
//
// # Pipeline
//
// Every view is built from a fresh [Snapshot]:
//
//  1. [LoadSnapshot] reads each registered dataset from a [Source]
//     concurrently and parses it with [Parse]. Any read failure fails the
//     whole snapshot.
//  2. A [ViewState] (search text, categorical selections, sort) is applied
//     with [ViewState.Apply], which runs [Filter] and then [Sort].
//  3. [Export] writes the filtered records, in dataset order, as an xlsx
//     workbook.
//
// # Dataset Registry
//
// Datasets are registered at init time using [Register]. Each
// [DatasetDefinition] names its raw source, export file name, search fields,
// categorical filters and displayed columns:
//
//	core.Register(core.DatasetDefinition{
//	    Info: core.DatasetInfo{
//	        Key:        "lost_semesters",
//	        File:       "estudiantes_semestres_perdidos_estado_normal.csv",
//	        ExportName: "estudiantes_semestres_perdidos.xlsx",
//	        PayloadKey: "failedSemestersData",
//	    },
//	    CodeField:  core.FieldStudentCode,
//	    LoginField: core.FieldLogin,
//	})
//
// The report's datasets live in package datasets.
//
// # Ingestion
//
// [Parse] never fails. Malformed input degrades to empty strings, and a
// value containing a comma is split even when quoted (see splitFields).
//
// # Ordering
//
// [Sort] compares raw strings, so "10" sorts before "2". Sorting is stable.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - SRC001-SRC002: Source errors (missing or unreadable datasets)
//   - DS001: Unknown dataset
//   - EXP001: Export failures
//   - DB001-DB003: Database source errors
//   - REQ001-REQ002: Cancelled or timed out requests
package core
