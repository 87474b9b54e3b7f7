package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/atena/internal/model"
)

func TestVIPNKnownValues(t *testing.T) {
	// Pinned expected values: these identifiers are already in circulation,
	// so the derivation may never change.
	assert.Equal(t, "V1E966112", VIPN(sampleRecords[0]))
	assert.Equal(t, "V4A78F180", VIPN(sampleRecords[1]))

	zero := model.Record{}
	assert.Equal(t, "V003921B4", VIPN(zero))
}

func TestVIPNIsDeterministic(t *testing.T) {
	first := VIPN(sampleRecords[0])
	for range 10 {
		assert.Equal(t, first, VIPN(sampleRecords[0]))
	}
}

func TestVIPNIgnoresHostnameAndMeta(t *testing.T) {
	a := sampleRecords[0]
	b := a
	b.Hostname = "completely-different"
	b.Category = "Y"
	b.SourceType = "direct"
	assert.Equal(t, VIPN(a), VIPN(b))
}

func TestVIPNSensitiveToSourceFields(t *testing.T) {
	a := sampleRecords[0]

	b := a
	b.Hash = "abc124"
	assert.NotEqual(t, VIPN(a), VIPN(b))
	assert.Equal(t, "V1E966111", VIPN(b))

	c := a
	c.Port = 6882
	assert.NotEqual(t, VIPN(a), VIPN(c))
}

func TestVIPNShape(t *testing.T) {
	id := VIPN(sampleRecords[0])
	assert.Len(t, id, 9)
	assert.True(t, strings.HasPrefix(id, "V"))
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestVIPNMultibyteSource(t *testing.T) {
	// Timestamps and hashes are ASCII in practice, but the digest is
	// defined over UTF-16 code units so any BMP text hashes compatibly.
	r := model.Record{IP: "日本", Port: 1, Timestamp: "あ", Hash: "ハ"}
	assert.Equal(t, "V53C3A6F5", VIPN(r))
}

func TestVIPNMappingRows(t *testing.T) {
	generated := time.Date(2023, 4, 1, 0, 30, 0, 0, time.UTC)
	mappings := VIPNMapping(sampleRecords, generated)
	require.Len(t, mappings, 2)

	m := mappings[0]
	assert.Equal(t, "V1E966112", m.VIPN)
	assert.Equal(t, "1.2.3.4", m.IP)
	assert.Equal(t, 6881, m.Port)
	assert.Equal(t, "2023/01/28 04:03:17", m.Timestamp)
	assert.Equal(t, "abc123", m.Hash)
	assert.Equal(t, "P001", m.ProductCode)
	assert.Equal(t, "2023-04-01T00:30:00.000Z", m.ExportedAt)
}

func TestVIPNDocument(t *testing.T) {
	generated := time.Date(2023, 4, 1, 0, 30, 0, 0, time.UTC)
	doc := VIPNDocument(sampleRecords[:1], generated)
	lines := strings.Split(doc, "\r\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"VIPN,IPN（後で入力）,IPアドレス,ポート番号,タイムスタンプ,Infohash,品番,エクスポート日時",
		lines[0])

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, 8)
	assert.Equal(t, "V1E966112", fields[0])
	assert.Equal(t, "", fields[1], "IPN column is empty at generation time")
	assert.Equal(t, "2023-04-01T00:30:00.000Z", fields[7])
}

func TestVIPNDocumentEmptyBatch(t *testing.T) {
	doc := VIPNDocument(nil, time.Now())
	assert.NotContains(t, doc, "\r\n")
	assert.True(t, strings.HasPrefix(doc, "VIPN,"))
}
