// Package export projects a filtered record set into the outbound mailing
// documents: the webletter CSV itself and the VIPN reconciliation map.
//
// Both documents are fixed wire contracts consumed by external tooling:
// column labels, column order, CRLF row joining, and the selective-quoting
// escape rule must not drift between releases.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/providers"
)

// separator joins fields within a row.
const separator = ","

// honorific is appended to a resolved legal name in the addressee column.
const honorific = " 御中"

// webletterColumns is the fixed header of the webletter document.
var webletterColumns = []string{
	"管理番号",
	"日付",
	"宛先会社名",
	"郵便番号",
	"住所1",
	"住所2",
	"品番",
	"Infohash",
	"IPアドレス",
	"ポート番号",
	"タイムスタンプ",
	"ホスト名",
}

// Webletter renders the mailing document for one recipient.
//
// Rows keep the iteration order of records; reference numbers run PN00001,
// PN00002, … in that order. When target resolves to no master entry the
// raw label is emitted as the addressee and the address columns stay empty
// — an unresolved recipient never fails an export. resolver may be nil,
// which behaves like a lookup that always misses.
func Webletter(records []model.Record, target string, resolver providers.Resolver, now time.Time) string {
	var provider *providers.Provider
	if resolver != nil {
		provider = resolver.Resolve(target)
	}

	today := formatDate(now)
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(webletterColumns, separator))

	for i, r := range records {
		addressee := target
		postalCode, address, department := "", "", ""
		if provider != nil {
			addressee = provider.FullName + honorific
			postalCode = provider.PostalCode
			address = provider.Address
			department = provider.Department
		}

		row := []string{
			fmt.Sprintf("PN%05d", i+1),
			today,
			addressee,
			postalCode,
			address,
			department,
			r.ProductCode,
			r.Hash,
			r.IP,
			fmt.Sprintf("%d", r.Port),
			r.Timestamp,
			r.Hostname,
		}
		lines = append(lines, joinRow(row))
	}

	return strings.Join(lines, "\r\n")
}

// formatDate renders the letter date as YYYY年MM月DD日.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%04d年%02d月%02d日", t.Year(), int(t.Month()), t.Day())
}

// joinRow escapes each field and joins them with the separator.
func joinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, separator)
}

// escapeField wraps a field in quotes, doubling internal quotes, when it
// contains a separator, quote, or newline. Other fields pass unquoted.
func escapeField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
