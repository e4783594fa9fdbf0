package core

import "strings"

// Parse turns raw delimited text into records.
//
// The first line is the header row. Header names and values have every
// double quote removed and surrounding whitespace trimmed. Lines that are
// blank after trimming produce no record. Values pair with headers by
// position; missing trailing cells become "" and surplus cells are dropped.
//
// Parse never fails: empty input or a header without data lines yields an
// empty, non-nil slice.
func Parse(raw string) []Record {
	lines := strings.Split(raw, "\n")
	records := make([]Record, 0, len(lines))
	if len(lines) < 2 {
		return records
	}

	header := splitFields(lines[0])
	for i, h := range header {
		header[i] = cleanCell(h)
	}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := splitFields(line)
		values := make([]string, len(header))
		for i := range header {
			if i < len(cells) {
				values[i] = cleanCell(cells[i])
			}
		}
		records = append(records, NewRecord(header, values))
	}

	return records
}

// splitFields splits one line on every comma.
//
// It has no notion of quoting: a value holding a literal comma is split
// in two. Replace this function (for example with encoding/csv) to get
// RFC 4180 behaviour; nothing else in the pipeline depends on how a line
// is split.
func splitFields(line string) []string {
	return strings.Split(line, ",")
}

// cleanCell removes every double quote and trims surrounding whitespace.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
