package parser

import (
	"strings"
)

func toLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

// splitFields splits a statement line on commas, honouring double quotes:
// commas inside a quoted field do not split, and the quotes themselves are
// stripped from the value.
func splitFields(line string) []string {
	var fields []string
	var sb strings.Builder

	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}

	fields = append(fields, sb.String())

	return fields
}
