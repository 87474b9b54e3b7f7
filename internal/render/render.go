// Package render draws the selection views (provider counts, category
// counts, record preview) as terminal tables. It is display glue: nothing
// here feeds back into filtering or export.
package render

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/normalize"
	"github.com/crimson-sun/atena/internal/store"
)

// DefaultPreviewLimit caps the preview table when the caller does not
// choose a limit.
const DefaultPreviewLimit = 100

// ISPCounts renders provider totals sorted by count descending.
func ISPCounts(counts map[string]int) string {
	return countsTable("ISP", store.SortByTotal(counts))
}

// CategoryCounts renders category totals sorted by name.
func CategoryCounts(counts map[string]int) string {
	return countsTable("カテゴリ", store.SortByName(counts))
}

func countsTable(label string, rows []store.Count) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{label, "件数"})
	total := 0
	for _, row := range rows {
		w.AppendRow(table.Row{row.Name, humanize.Comma(int64(row.Total)) + "件"})
		total += row.Total
	}
	w.AppendFooter(table.Row{"合計", humanize.Comma(int64(total)) + "件"})
	return w.Render()
}

// Preview renders the first limit records of a filtered set. limit <= 0
// applies DefaultPreviewLimit.
func Preview(records []model.Record, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	shown := records
	if len(shown) > limit {
		shown = shown[:limit]
	}

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"No.", "品番", "ISP", "IPアドレス", "ポート", "タイムスタンプ"})
	for i, r := range shown {
		w.AppendRow(table.Row{
			i + 1,
			r.ProductCode,
			normalize.ISPName(r.ISPName),
			r.IP,
			r.Port,
			r.Timestamp,
		})
	}
	return w.Render() + "\n" + fmt.Sprintf("表示: %d件 / 全%d件", len(shown), len(records))
}
