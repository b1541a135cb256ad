package importer

import "strings"

// ParseTable splits raw delimited text into rows of trimmed fields. Field
// splitting is quote-aware: a double quote toggles in-quotes state and commas
// inside quotes do not split. Empty lines are skipped.
func ParseTable(raw string) [][]string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitFields(line))
	}
	return rows
}

func splitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// normalizeHeader lowercases a header and strips all internal whitespace so
// "Purchase Price" matches "purchaseprice".
func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), ""))
}

// findHeader returns the index of the first header whose normalised form
// equals any of the wanted names, or -1.
func findHeader(headers []string, names ...string) int {
	for i, h := range headers {
		n := normalizeHeader(h)
		for _, want := range names {
			if n == normalizeHeader(want) {
				return i
			}
		}
	}
	return -1
}

// findHeaderContains returns the index of the first header whose normalised
// form contains the wanted substring, or -1.
func findHeaderContains(headers []string, substr string) int {
	want := normalizeHeader(substr)
	for i, h := range headers {
		if strings.Contains(normalizeHeader(h), want) {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
