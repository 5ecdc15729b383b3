package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

const (
	labelWidth = 8
	valueWidth = 12
)

// writeIdentity prints the input name and its shape. The column count is
// left off for single-column input.
func writeIdentity(w io.Writer, t *table) error {
	var err error
	if t.oneDim() {
		_, err = fmt.Fprintf(w, "%s %d rows\n", t.name, t.rows)
	} else {
		_, err = fmt.Fprintf(w, "%s %d rows %d columns\n", t.name, t.rows, len(t.cols))
	}
	return err
}

// writeReport prints the identity line of t followed by one row of
// statistics per column, labeled by the column's index in the input.
func writeReport(w io.Writer, t *table, sums []summary) error {
	var buf bytes.Buffer
	if err := writeIdentity(&buf, t); err != nil {
		return err
	}

	fmt.Fprintf(&buf, "%-*s", labelWidth, "column")
	for _, label := range statLabels {
		fmt.Fprintf(&buf, " %*s", valueWidth, label)
	}
	buf.WriteByte('\n')

	for j, s := range sums {
		fmt.Fprintf(&buf, "%-*d", labelWidth, t.labels[j])
		for _, v := range s.values() {
			fmt.Fprintf(&buf, " %*s", valueWidth, formatValue(v))
		}
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// formatValue renders v in fixed point with 5 decimals. Non-finite values
// print as nan, inf and -inf.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 5, 64)
}
