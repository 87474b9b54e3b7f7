// Package parser turns decoded monitoring exports into Records.
//
// The input format is newline-separated rows of at least six comma-delimited
// fields in the fixed order hash, ip, port, timestamp, hostname, ispName.
// Fields may be wrapped in double quotes; a quote toggles delimiter handling
// so embedded commas survive. That toggle is the entire quoting model —
// doubled quotes are not decoded as escaped literals, upstream exports never
// produce them.
package parser

import (
	"strconv"
	"strings"

	"github.com/crimson-sun/atena/internal/model"
)

// minFields is the number of positional fields a row must yield to become
// a Record. Shorter rows are truncated garbage and are skipped so one bad
// row cannot abort a large batch.
const minFields = 6

// Parse splits text into Records, tagging each with the import metadata.
// Parsing is pure and deterministic: the same text and meta always yield
// the same sequence. Blank lines and rows with fewer than six fields are
// skipped silently.
func Parse(text string, meta model.ImportMeta) []model.Record {
	var records []model.Record
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		if len(fields) < minFields {
			continue
		}
		records = append(records, model.Record{
			Category:    meta.Category,
			SourceType:  meta.SourceType,
			ProductCode: meta.ProductCode,
			Hash:        strings.TrimSpace(fields[0]),
			IP:          strings.TrimSpace(fields[1]),
			Port:        parsePort(fields[2]),
			Timestamp:   stripQuotes(strings.TrimSpace(fields[3])),
			Hostname:    strings.TrimSpace(fields[4]),
			ISPName:     stripQuotes(strings.TrimSpace(fields[5])),
		})
	}
	return records
}

// splitLine splits one row on unquoted commas. A double quote flips the
// in-quotes state and is not emitted; commas inside quotes are literal.
func splitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// parsePort reads a base-10 port. Anything that does not parse maps to 0;
// a bad port must never reject the row.
func parsePort(s string) int {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return p
}

// stripQuotes removes any quote characters the splitter left behind in
// fields that upstream tools sometimes quote redundantly.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
