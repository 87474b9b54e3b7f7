// Package normalize maps free-text provider labels onto canonical names.
//
// Upstream exports spell the same provider a dozen ways ("au", "AU",
// "KDDI株式会社") and, being Shift_JIS, sometimes arrive with garbled
// bytes around the label. Normalization strips anything outside the
// expected scripts, then resolves the cleaned label against an ordered
// alias table. It is a pure read-time function: stored records keep the
// raw label.
package normalize

import "strings"

// Unknown is returned when a label is empty or only garbage.
const Unknown = "不明"

// mapping pairs a canonical provider name with the spellings seen in the
// wild. The table is a slice, not a map: entries are checked in
// declaration order and the first match wins, which keeps resolution
// stable for labels that would match more than one entry.
type mapping struct {
	canonical string
	aliases   []string
}

var mappings = []mapping{
	{"KDDI", []string{"KDDI", "au", "AU"}},
	{"ソフトバンク", []string{"SoftBank", "SOFTBANK", "Yahoo BB", "ソフトバンク"}},
	{"NTTドコモ", []string{"docomo", "NTT DOCOMO", "ドコモ"}},
	{"NTTコミュニケーションズ", []string{"OCN", "NTT Com", "NTT Communications"}},
	{"JCOM", []string{"JCOM", "J:COM", "ジェイコム"}},
	{"ビッグローブ", []string{"BIGLOBE", "biglobe"}},
	{"ニフティ", []string{"@nifty", "NIFTY", "nifty"}},
	{"ソニーネットワーク", []string{"So-net", "NURO", "ソネット"}},
	{"GMOインターネット", []string{"GMO", "とくとくBB"}},
}

// ISPName resolves a raw provider label to its canonical name.
// Labels that match no table entry pass through cleaned but otherwise
// unchanged; they are still usable as their own grouping key.
func ISPName(raw string) string {
	if raw == "" {
		return Unknown
	}
	name := strings.TrimSpace(clean(raw))
	if name == "" {
		return Unknown
	}
	lower := strings.ToLower(name)
	for _, m := range mappings {
		for _, alias := range m.aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return m.canonical
			}
		}
	}
	return name
}

// clean drops every rune outside the scripts a provider label can contain:
// printable ASCII, hiragana, katakana, and the CJK unified ideographs.
// Anything else is mis-decoded noise.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x20 && r <= 0x7E,
			r >= 0x3040 && r <= 0x309F,
			r >= 0x30A0 && r <= 0x30FF,
			r >= 0x4E00 && r <= 0x9FFF:
			b.WriteRune(r)
		}
	}
	return b.String()
}
