package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

const histBlocks = 70

type histOptions struct {
	column  int // 1-based
	buckets int
	files   []string
}

func histogram(args []string) {
	fs := flag.NewFlagSet("hist", flag.ExitOnError)
	var opts histOptions
	fs.IntVar(&opts.column, "column", 1, "Which 1-based `column` to plot")
	fs.IntVar(&opts.buckets, "buckets", 10, "How many buckets for the histogram")
	opts.files = parseInterspersed(fs, args)

	if opts.buckets <= 1 {
		log.Fatalf("%d is an invalid number of buckets", opts.buckets)
	}
	if opts.column < 1 {
		log.Fatalf("%d is an invalid column (columns start at 1)", opts.column)
	}

	w := bufio.NewWriter(os.Stdout)
	err := runHist(w, &opts)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runHist(w io.Writer, opts *histOptions) error {
	names := opts.files
	if len(names) == 0 {
		names = []string{""}
	}
	for _, name := range names {
		t, err := loadTable(name, []int{opts.column - 1})
		if err != nil {
			return err
		}
		if err := writeIdentity(w, t); err != nil {
			return err
		}
		h := newHist(t.cols[0], opts.buckets)
		if _, err := fmt.Fprintln(w, h); err != nil {
			return err
		}
	}
	return nil
}

type histBucket struct {
	start float64
	count int64
}

type hist struct {
	bucketSize float64
	buckets    []histBucket
}

// newHist splits [min, max] of v into n equal buckets. The last bucket is
// closed on the right. A constant v yields a single bucket.
func newHist(v []float64, n int) *hist {
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)
	min, max := sorted[0], sorted[len(sorted)-1]
	rnge := max - min
	if rnge == 0 {
		return &hist{buckets: []histBucket{{start: min, count: int64(len(sorted))}}}
	}

	h := &hist{
		bucketSize: rnge / float64(n),
		buckets:    make([]histBucket, n),
	}
	for i := range h.buckets {
		h.buckets[i].start = min + float64(i)*h.bucketSize
	}
	for _, x := range sorted {
		i := int((x - min) / h.bucketSize)
		if i >= n {
			i = n - 1
		}
		h.buckets[i].count++
	}
	return h
}

func (h *hist) String() string {
	labels := make([]string, len(h.buckets))
	labelSpaceBefore := 0
	labelSpaceAfter := 0
	var maxCount, sum float64
	for i, b := range h.buckets {
		sum += float64(b.count)
		s := "<"
		if i == len(h.buckets)-1 {
			s = "≤"
		}
		label := fmt.Sprintf("%.3g ≤ x %s %.3g", b.start, s, b.start+h.bucketSize)
		xPos := xColumn(label)
		if xPos > labelSpaceBefore {
			labelSpaceBefore = xPos
		}
		if after := utf8.RuneCountInString(label) - xPos - 1; after > labelSpaceAfter {
			labelSpaceAfter = after
		}
		labels[i] = label
		if f := float64(b.count); f > maxCount {
			maxCount = f
		}
	}

	var buf bytes.Buffer
	for i, b := range h.buckets {
		xPos := xColumn(labels[i])
		before := labelSpaceBefore - xPos
		after := labelSpaceAfter - utf8.RuneCountInString(labels[i]) + xPos + 1
		fmt.Fprintf(&buf, " %*s%s%*s │", before, "", labels[i], after, "")
		fmt.Fprint(&buf, bar((float64(b.count)/maxCount)*histBlocks))
		fmt.Fprintf(&buf, " %d (%.3f%%)\n", b.count, 100*float64(b.count)/sum)
	}
	b := buf.Bytes()
	return string(b[:len(b)-1]) // drop the \n
}

// xColumn returns the rune offset of the x in a bucket label.
func xColumn(label string) int {
	return utf8.RuneCountInString(label[:strings.IndexByte(label, 'x')])
}

// eighthBlocks holds the partial bar glyphs, from empty to a full block.
var eighthBlocks = []rune(" ▏▎▍▌▋▊▉█")

// bar draws n blocks, rounded to the nearest eighth. The final glyph is the
// partial block (a space when there is none).
func bar(n float64) string {
	eighths := int(math.Round(n * 8))
	return strings.Repeat(string(eighthBlocks[8]), eighths/8) + string(eighthBlocks[eighths%8])
}
