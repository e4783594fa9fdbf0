package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fields flattens one record for comparison.
func fields(r Record) map[string]string {
	out := make(map[string]string, r.Len())
	for _, k := range r.Keys() {
		out[k] = r.Value(k)
	}
	return out
}

// rows flattens records for comparison.
func rows(records []Record) []map[string]string {
	out := make([]map[string]string, len(records))
	for i, r := range records {
		out[i] = fields(r)
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []map[string]string
	}{
		{
			name: "empty input",
			raw:  "",
			want: []map[string]string{},
		},
		{
			name: "header only",
			raw:  "A,B",
			want: []map[string]string{},
		},
		{
			name: "header with trailing newline",
			raw:  "A,B\n",
			want: []map[string]string{},
		},
		{
			name: "simple rows",
			raw:  "A,B\n1,2\n3,4",
			want: []map[string]string{{"A": "1", "B": "2"}, {"A": "3", "B": "4"}},
		},
		{
			name: "line of only delimiters still produces a record",
			raw:  "A,B\n1,2\n,\n3,4",
			want: []map[string]string{{"A": "1", "B": "2"}, {"A": "", "B": ""}, {"A": "3", "B": "4"}},
		},
		{
			name: "blank and whitespace-only lines skipped",
			raw:  "A,B\n\n1,2\n   \n\t\n3,4\n",
			want: []map[string]string{{"A": "1", "B": "2"}, {"A": "3", "B": "4"}},
		},
		{
			name: "quotes stripped and values trimmed",
			raw:  "\"A\", \"B\" \n \"x\" ,\" y \"",
			want: []map[string]string{{"A": "x", "B": "y"}},
		},
		{
			name: "inner quotes removed",
			raw:  "NAME\nsay \"hi\"",
			want: []map[string]string{{"NAME": "say hi"}},
		},
		{
			name: "missing cells become empty",
			raw:  "A,B,C\n1",
			want: []map[string]string{{"A": "1", "B": "", "C": ""}},
		},
		{
			name: "surplus cells dropped",
			raw:  "A,B\n1,2,3,4",
			want: []map[string]string{{"A": "1", "B": "2"}},
		},
		{
			name: "CRLF line endings",
			raw:  "A,B\r\n1,2\r\n",
			want: []map[string]string{{"A": "1", "B": "2"}},
		},
		{
			name: "quoted comma splits the value",
			raw:  "A,B\n\"x,y\",z",
			want: []map[string]string{{"A": "x", "B": "y"}},
		},
		{
			name: "duplicate header keeps last value",
			raw:  "A,B,A\n1,2,3",
			want: []map[string]string{{"A": "3", "B": "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got == nil {
				t.Fatal("Parse returned nil slice")
			}
			if diff := cmp.Diff(tt.want, rows(got)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RecordsCarryEveryHeaderKey(t *testing.T) {
	raw := "CODIGO_ESTUDIANTE,LOGIN,PROGRAMA_1\n1,a\n2,b,Medicina,extra\n"
	for i, r := range Parse(raw) {
		if diff := cmp.Diff([]string{"CODIGO_ESTUDIANTE", "LOGIN", "PROGRAMA_1"}, r.Keys()); diff != "" {
			t.Errorf("record %d keys mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestParse_DuplicateHeaderKeepsFirstPosition(t *testing.T) {
	records := Parse("A,B,A\n1,2,3")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if diff := cmp.Diff([]string{"A", "B"}, records[0].Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RecordCountMatchesNonBlankLines(t *testing.T) {
	raw := "A\n1\n\n2\n \n3\n4"
	if got := len(Parse(raw)); got != 4 {
		t.Errorf("got %d records, want 4", got)
	}
}

func TestSplitFields(t *testing.T) {
	got := splitFields(`a,"b,c",,d`)
	want := []string{"a", `"b`, `c"`, "", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitFields mismatch (-want +got):\n%s", diff)
	}
}
