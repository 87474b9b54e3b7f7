// Package filter selects the record subset an export will cover.
//
// Criteria are conjunctive and each dimension is optional. Provider
// membership is tested on the normalized name so "au" and "KDDI株式会社"
// land in the same bucket; category and product code are tested raw.
package filter

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/normalize"
)

// epoch is the sentinel for timestamps that do not parse. A record carrying
// the sentinel is only excluded when a date bound is actually supplied.
var epoch = time.Unix(0, 0)

// Apply returns the records matching every supplied criterion, in input
// order. It is a pure function: identical inputs yield identical results.
func Apply(records []model.Record, c model.Criteria) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r model.Record, c model.Criteria) bool {
	if len(c.ISPs) > 0 && !slices.Contains(c.ISPs, normalize.ISPName(r.ISPName)) {
		return false
	}
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, r.Category) {
		return false
	}
	if c.Start != nil || c.End != nil {
		ts := ParseTimestamp(r.Timestamp)
		if c.Start != nil && ts.Before(*c.Start) {
			return false
		}
		if c.End != nil && ts.After(*c.End) {
			return false
		}
	}
	if len(c.ProductCodes) > 0 && !slices.Contains(c.ProductCodes, r.ProductCode) {
		return false
	}
	return true
}

// ParseTimestamp reads a "YYYY/MM/DD[ HH:MM:SS]" local-time string.
// A missing or unsplittable date part maps to the epoch sentinel; this is
// the defined fallback, not an error.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return epoch
	}
	datePart, timePart, _ := strings.Cut(s, " ")
	if datePart == "" {
		return epoch
	}
	d := strings.Split(datePart, "/")
	if len(d) < 3 {
		return epoch
	}
	year, month, day := atoi(d[0]), atoi(d[1]), atoi(d[2])

	var hour, minute, sec int
	if timePart != "" {
		tp := strings.Split(timePart, ":")
		if len(tp) > 0 {
			hour = atoi(tp[0])
		}
		if len(tp) > 1 {
			minute = atoi(tp[1])
		}
		if len(tp) > 2 {
			sec = atoi(tp[2])
		}
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
