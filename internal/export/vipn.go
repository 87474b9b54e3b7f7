package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/crimson-sun/atena/internal/model"
)

// vipnPrefix marks an identifier as provisional, issued by this tool
// rather than by the registry.
const vipnPrefix = "V"

// vipnColumns is the fixed header of the reconciliation document. The IPN
// column is a placeholder filled in by hand once the registry assigns the
// real number.
var vipnColumns = []string{
	"VIPN",
	"IPN（後で入力）",
	"IPアドレス",
	"ポート番号",
	"タイムスタンプ",
	"Infohash",
	"品番",
	"エクスポート日時",
}

// VIPN derives the provisional identification number for a record.
//
// The source string is ip|port|timestamp|hash; hostname and the import
// metadata are deliberately excluded so the identifier survives hostname
// re-resolution. The digest is a 32-bit rolling hash (acc = acc*31 + code
// unit, wrapping at each step) over the source's UTF-16 code units —
// matching identifiers already issued by the predecessor tooling. It is
// collision-tolerant, not collision-resistant; batch sizes are small
// enough that an occasional collision is acceptable and resolved by the
// accompanying source columns in the mapping document.
func VIPN(r model.Record) string {
	source := fmt.Sprintf("%s|%d|%s|%s", r.IP, r.Port, r.Timestamp, r.Hash)

	var acc int32
	for _, u := range utf16.Encode([]rune(source)) {
		acc = acc*31 + int32(u)
	}

	v := int64(acc)
	if v < 0 {
		v = -v
	}
	hex := strings.ToUpper(fmt.Sprintf("%x", v))
	for len(hex) < 8 {
		hex = "0" + hex
	}
	// Pad-then-truncate is the issued-identifier contract; keep the order
	// even though the truncation cannot fire at this width.
	return vipnPrefix + hex[:8]
}

// Mapping is one row of the reconciliation document.
type Mapping struct {
	VIPN        string
	IP          string
	Port        int
	Timestamp   string
	Hash        string
	ProductCode string
	ExportedAt  string
}

// VIPNMapping derives the reconciliation entries for a batch. generatedAt
// is the audit timestamp stamped on every row; it plays no part in the
// identifier itself.
func VIPNMapping(records []model.Record, generatedAt time.Time) []Mapping {
	exportedAt := generatedAt.UTC().Format("2006-01-02T15:04:05.000Z")
	out := make([]Mapping, len(records))
	for i, r := range records {
		out[i] = Mapping{
			VIPN:        VIPN(r),
			IP:          r.IP,
			Port:        r.Port,
			Timestamp:   r.Timestamp,
			Hash:        r.Hash,
			ProductCode: r.ProductCode,
			ExportedAt:  exportedAt,
		}
	}
	return out
}

// VIPNDocument renders the reconciliation CSV for a batch.
func VIPNDocument(records []model.Record, generatedAt time.Time) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(vipnColumns, separator))
	for _, m := range VIPNMapping(records, generatedAt) {
		row := []string{
			m.VIPN,
			"", // IPN is assigned out of band
			m.IP,
			fmt.Sprintf("%d", m.Port),
			m.Timestamp,
			m.Hash,
			m.ProductCode,
			m.ExportedAt,
		}
		lines = append(lines, joinRow(row))
	}
	return strings.Join(lines, "\r\n")
}
