package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHist(t *testing.T) {
	v := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	h := newHist(v, 3)
	require.Len(t, h.buckets, 3)
	assert.Equal(t, 3.0, h.bucketSize)

	var counts []int64
	var total int64
	for _, b := range h.buckets {
		counts = append(counts, b.count)
		total += b.count
	}
	assert.Equal(t, []int64{3, 3, 4}, counts)
	assert.Equal(t, int64(len(v)), total)
	assert.Equal(t, []float64{1, 4, 7}, []float64{h.buckets[0].start, h.buckets[1].start, h.buckets[2].start})
}

func TestNewHistConstant(t *testing.T) {
	h := newHist([]float64{5, 5, 5}, 10)
	require.Len(t, h.buckets, 1)
	assert.Equal(t, int64(3), h.buckets[0].count)
	// A bar always ends with its partial block, which is blank here.
	assert.Equal(t, " 5 ≤ x ≤ 5 │"+strings.Repeat("█", histBlocks)+"  3 (100.000%)", h.String())
}

func TestHistString(t *testing.T) {
	h := newHist([]float64{0, 1, 1, 2, 2, 2, 2, 4}, 2)
	lines := strings.Split(h.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, " 0 ≤ x < 2 │"+strings.Repeat("█", 42)+"  3 (37.500%)", lines[0])
	assert.Equal(t, " 2 ≤ x ≤ 4 │"+strings.Repeat("█", 70)+"  5 (62.500%)", lines[1])
}

func TestHistStringPartialBlock(t *testing.T) {
	h := &hist{bucketSize: 1, buckets: []histBucket{{start: 0, count: 1}, {start: 1, count: 16}}}
	lines := strings.Split(h.String(), "\n")
	require.Len(t, lines, 2)
	// 1/16 of 70 blocks is 4 3/8.
	assert.Equal(t, " 0 ≤ x < 1 │████▍ 1 (5.882%)", lines[0])
}

func TestBar(t *testing.T) {
	for _, tt := range []struct {
		n    float64
		want string
	}{
		{0, " "},
		{0.0625, "▏"}, // half an eighth rounds up
		{0.05, " "},
		{1, "█ "},
		{2.3, "██▎"},
		{3.99, "████ "},
	} {
		assert.Equal(t, tt.want, bar(tt.n), "bar(%v)", tt.n)
	}
}

func TestRunHist(t *testing.T) {
	path := writeFile(t, "data.txt", "1 5\n2 5\n3 5\n")
	var buf bytes.Buffer
	require.NoError(t, runHist(&buf, &histOptions{column: 2, buckets: 4, files: []string{path}}))
	assert.Equal(t, path+" 3 rows\n 5 ≤ x ≤ 5 │"+strings.Repeat("█", histBlocks)+"  3 (100.000%)\n", buf.String())

	err := runHist(&buf, &histOptions{column: 3, buckets: 4, files: []string{path}})
	var rerr *ColumnRangeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 3, rerr.Column)
}
