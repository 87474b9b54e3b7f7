package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/atena/internal/model"
)

func rec(category, isp string) model.Record {
	return model.Record{Category: category, ISPName: isp}
}

func TestReplaceDiscardsOldSet(t *testing.T) {
	s := New()
	s.Replace([]model.Record{rec("A", "au")})
	s.Replace([]model.Record{rec("B", "OCN"), rec("B", "OCN")})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, map[string]int{"B": 2}, s.CountByCategory())
}

func TestAppendMergesImports(t *testing.T) {
	s := New()
	s.Append([]model.Record{rec("A", "au")})
	s.Append([]model.Record{rec("B", "SoftBank")})
	assert.Equal(t, 2, s.Len())
}

func TestCountByISPNormalizes(t *testing.T) {
	s := New()
	s.Replace([]model.Record{
		rec("A", "au"),
		rec("A", "KDDI株式会社"),
		rec("A", "SoftBank"),
		rec("A", ""),
	})
	counts := s.CountByISP()
	assert.Equal(t, 2, counts["KDDI"])
	assert.Equal(t, 1, counts["ソフトバンク"])
	assert.Equal(t, 1, counts["不明"])
}

func TestCountByCategoryUsesRawTag(t *testing.T) {
	s := New()
	s.Replace([]model.Record{rec("映画A", "au"), rec("映画A", "OCN"), rec("映画B", "au")})
	assert.Equal(t, map[string]int{"映画A": 2, "映画B": 1}, s.CountByCategory())
}

func TestSortByTotalDescendingStable(t *testing.T) {
	counts := map[string]int{"b": 2, "a": 2, "c": 5}
	got := SortByTotal(counts)
	require.Len(t, got, 3)
	assert.Equal(t, Count{"c", 5}, got[0])
	// Equal totals fall back to name order.
	assert.Equal(t, Count{"a", 2}, got[1])
	assert.Equal(t, Count{"b", 2}, got[2])
}

func TestSortByName(t *testing.T) {
	got := SortByName(map[string]int{"b": 1, "a": 9})
	assert.Equal(t, []Count{{"a", 9}, {"b", 1}}, got)
}
