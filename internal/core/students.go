package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Field names shared by both risk datasets.
const (
	FieldStudentCode = "CODIGO_ESTUDIANTE"
	FieldLogin       = "LOGIN"
	FieldProgram     = "PROGRAMA_1"
	FieldFunding     = "CLASIFICACION_BECAS_EXTENDIDA"

	FieldLostSemesters    = "NUM_SEMESTRES_PERDIDOS"
	FieldMostRecentPeriod = "PERIODO_MAS_RECIENTE_PERDIDO"
)

// MaxBlockingSubjects is the number of MATERIA_i/VECES_i pairs a
// blocking-attempts record can carry.
const MaxBlockingSubjects = 6

// HighRiskLostSemesters is the lost semester count from which a student is
// flagged as high severity.
const HighRiskLostSemesters = 3

// SubjectField returns the MATERIA_i field name (1-based).
func SubjectField(i int) string { return fmt.Sprintf("MATERIA_%d", i) }

// AttemptsField returns the VECES_i field name (1-based).
func AttemptsField(i int) string { return fmt.Sprintf("VECES_%d", i) }

// BlockingAttempt is a repeated subject and how many times it was taken.
type BlockingAttempt struct {
	Subject  string
	Attempts string
}

// BlockingAttempts returns the subject/attempt pairs present in r, in
// MATERIA_1..MATERIA_6 order. A pair is present when its subject is set.
func BlockingAttempts(r Record) []BlockingAttempt {
	var out []BlockingAttempt
	for i := 1; i <= MaxBlockingSubjects; i++ {
		subject := r.Value(SubjectField(i))
		if subject == "" {
			continue
		}
		out = append(out, BlockingAttempt{
			Subject:  subject,
			Attempts: r.Value(AttemptsField(i)),
		})
	}
	return out
}

// ParseCount reads the leading integer of s, ignoring surrounding space and
// any trailing text.
func ParseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Severity grades a lost semester count.
type Severity string

const (
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// SeverityFor returns SeverityHigh from HighRiskLostSemesters upwards.
func SeverityFor(count int) Severity {
	if count >= HighRiskLostSemesters {
		return SeverityHigh
	}
	return SeverityModerate
}

// CountSeverity grades a raw lost semester count. ok is false when raw
// does not start with a number.
func CountSeverity(raw string) (Severity, bool) {
	n, ok := ParseCount(raw)
	if !ok {
		return "", false
	}
	return SeverityFor(n), true
}

// FormatPeriod renders a raw period as "YYYY-S". Empty input yields "";
// input too short to hold a semester is split the same way.
func FormatPeriod(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return s + "-"
	}
	return s[:4] + "-" + s[4:]
}

// ProfileURL builds the external profile link for login. The login is path
// escaped; base is used as given.
func ProfileURL(base, login string) string {
	return base + url.PathEscape(login)
}
