package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	stdinName   = "<STDIN>"
	maxLineSize = 16 << 20
)

// ErrNoRows is returned when an input contains no data rows.
var ErrNoRows = errors.New("no data rows")

// A LoadError reports an input that could not be read or parsed.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error while loading %s: %s", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// A ColumnRangeError reports a selected column that the input does not have.
type ColumnRangeError struct {
	Column     int // 1-based
	NumColumns int
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("column %d out of range (input has %d columns)", e.Column, e.NumColumns)
}

// table is a rectangular block of numbers loaded from one input.
// It is stored column-major: cols[j] holds every value of column j.
type table struct {
	name   string
	rows   int
	cols   [][]float64
	labels []int // 1-based input column of each entry of cols
}

// oneDim reports whether t has a single column.
func (t *table) oneDim() bool { return len(t.cols) == 1 }

// loadTable reads the named input. The empty name and "-" mean stdin and
// names ending in .xlsx are read as spreadsheets. If sel is non-nil, only
// the columns with those 0-based indexes are kept (in input order).
func loadTable(name string, sel []int) (*table, error) {
	display := name
	if name == "" || name == "-" {
		name = ""
		display = stdinName
	}
	var (
		t   *table
		err error
	)
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		t, err = loadXLSX(name, sel)
	} else {
		t, err = loadText(name, sel)
	}
	if err != nil {
		return nil, &LoadError{Name: display, Err: err}
	}
	t.name = display
	return t, nil
}

func loadText(name string, sel []int) (*table, error) {
	if name == "" {
		return scanTable(os.Stdin, sel)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanTable(f, sel)
}

// scanTable reads whitespace-separated rows from r. Text after a # is
// ignored.
func scanTable(r io.Reader, sel []int) (*table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	b := newTableBuilder(sel)
	line := 0
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		if err := b.add(strings.Fields(s), line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.build()
}

// loadXLSX reads the first sheet of a workbook, one row per table row.
func loadXLSX(name string, sel []int) (*table, error) {
	f, err := excelize.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}
	// Raw values, so that number formats like 0.00 or 0% don't alter the data.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	b := newTableBuilder(sel)
	for i, row := range rows {
		var fields []string
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if strings.HasPrefix(cell, "#") {
				break
			}
			fields = append(fields, cell)
		}
		if err := b.add(fields, i+1); err != nil {
			return nil, err
		}
	}
	return b.build()
}

type tableBuilder struct {
	sel   []int
	keep  []int // input indexes of the kept columns; nil until the first row
	width int
	rows  int
	cols  [][]float64
}

func newTableBuilder(sel []int) *tableBuilder {
	return &tableBuilder{sel: sel}
}

// add appends one row of fields. An empty row is ignored.
func (b *tableBuilder) add(fields []string, line int) error {
	if len(fields) == 0 {
		return nil
	}
	if b.keep == nil {
		if err := b.init(len(fields)); err != nil {
			return err
		}
	}
	if len(fields) != b.width {
		return fmt.Errorf("line %d: found %d fields; want %d", line, len(fields), b.width)
	}
	for j, idx := range b.keep {
		v, err := parseValue(fields[idx])
		if err != nil {
			return fmt.Errorf("line %d, column %d: %w", line, idx+1, err)
		}
		b.cols[j] = append(b.cols[j], v)
	}
	b.rows++
	return nil
}

func (b *tableBuilder) init(width int) error {
	b.width = width
	if b.sel == nil {
		b.keep = make([]int, width)
		for i := range b.keep {
			b.keep[i] = i
		}
	} else {
		for _, idx := range b.sel {
			if idx >= width {
				return &ColumnRangeError{Column: idx + 1, NumColumns: width}
			}
		}
		b.keep = b.sel
	}
	b.cols = make([][]float64, len(b.keep))
	return nil
}

func (b *tableBuilder) build() (*table, error) {
	if b.rows == 0 {
		return nil, ErrNoRows
	}
	t := &table{
		rows:   b.rows,
		cols:   b.cols,
		labels: make([]int, len(b.keep)),
	}
	for j, idx := range b.keep {
		t.labels[j] = idx + 1
	}
	return t, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
