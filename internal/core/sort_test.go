package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func values(records []Record, field string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Value(field)
	}
	return out
}

func TestSort(t *testing.T) {
	input := []Record{
		RecordOf("N", "2", "ID", "a"),
		RecordOf("N", "10", "ID", "b"),
		RecordOf("N", "1", "ID", "c"),
		RecordOf("N", "2", "ID", "d"),
	}

	tests := []struct {
		name  string
		state SortState
		want  []string
	}{
		{"no key keeps input order", SortState{}, []string{"a", "b", "c", "d"}},
		{"ascending is lexicographic", SortState{Key: "N", Direction: Ascending}, []string{"c", "b", "a", "d"}},
		{"descending", SortState{Key: "N", Direction: Descending}, []string{"a", "d", "b", "c"}},
		{"unknown key keeps input order", SortState{Key: "MISSING", Direction: Ascending}, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(input, tt.state)
			if diff := cmp.Diff(tt.want, values(got, "ID")); diff != "" {
				t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSort_TenBeforeTwo(t *testing.T) {
	got := Sort([]Record{RecordOf("N", "2"), RecordOf("N", "10")}, SortState{Key: "N", Direction: Ascending})
	if diff := cmp.Diff([]string{"10", "2"}, values(got, "N")); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	input := []Record{RecordOf("N", "b"), RecordOf("N", "a")}
	_ = Sort(input, SortState{Key: "N", Direction: Ascending})

	if diff := cmp.Diff([]string{"b", "a"}, values(input, "N")); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestSort_IsPermutation(t *testing.T) {
	input := sampleStudents()
	got := Sort(input, SortState{Key: FieldStudentCode, Direction: Descending})

	if len(got) != len(input) {
		t.Fatalf("len = %d, want %d", len(got), len(input))
	}
	count := make(map[string]int)
	for _, c := range codes(input) {
		count[c]++
	}
	for _, c := range codes(got) {
		count[c]--
	}
	for c, n := range count {
		if n != 0 {
			t.Errorf("record %s count off by %d", c, n)
		}
	}
}

func TestSortState_Toggle(t *testing.T) {
	tests := []struct {
		name string
		from SortState
		key  string
		want SortState
	}{
		{"unsorted to ascending", SortState{}, "A", SortState{Key: "A", Direction: Ascending}},
		{"ascending to descending", SortState{Key: "A", Direction: Ascending}, "A", SortState{Key: "A", Direction: Descending}},
		{"descending back to ascending", SortState{Key: "A", Direction: Descending}, "A", SortState{Key: "A", Direction: Ascending}},
		{"new key resets to ascending", SortState{Key: "A", Direction: Descending}, "B", SortState{Key: "B", Direction: Ascending}},
		{"new key from ascending", SortState{Key: "A", Direction: Ascending}, "B", SortState{Key: "B", Direction: Ascending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Toggle(tt.key); got != tt.want {
				t.Errorf("Toggle(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseSortDirection(t *testing.T) {
	tests := map[string]SortDirection{
		"desc":       Descending,
		"DESC":       Descending,
		"descending": Descending,
		"asc":        Ascending,
		"":           Ascending,
		"sideways":   Ascending,
	}
	for in, want := range tests {
		if got := ParseSortDirection(in); got != want {
			t.Errorf("ParseSortDirection(%q) = %q, want %q", in, got, want)
		}
	}
}
