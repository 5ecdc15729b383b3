package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"
)

type describeOptions struct {
	columns   []int // 0-based, sorted; nil means all
	bootstrap bool
	seed      uint64
	seeded    bool
	files     []string
}

func describe(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: colstats [describe] [flags] [file...]

Print summary statistics for every column of whitespace-separated numeric
input (or the first sheet of .xlsx files). With no files, read stdin.
A file named describe or hist must be written as a path, such as ./hist,
or placed after --.

Flags:
`)
		fs.PrintDefaults()
	}
	var (
		opts    describeOptions
		columns string
	)
	fs.StringVar(&columns, "c", "", "Comma-separated 1-based `columns` to describe (default all)")
	fs.StringVar(&columns, "columns", "", "Same as -c")
	var boot bootstrapFlag
	fs.Var(&boot, "b", "Describe one bootstrap resample of the rows (an optional count, such as -b 100, is accepted; 0 disables)")
	fs.Var(&boot, "bootstrap", "Same as -b")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random `seed` for -b (default: random)")
	opts.files = parseInterspersed(fs, args)
	opts.bootstrap = boot.enabled
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seeded = true
		}
	})

	if columns != "" {
		sel, err := parseColumns(columns)
		if err != nil {
			log.Fatal(err)
		}
		opts.columns = sel
	}

	w := bufio.NewWriter(os.Stdout)
	err := runDescribe(w, &opts)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runDescribe loads, summarizes and reports each input in turn, stopping
// at the first error.
func runDescribe(w io.Writer, opts *describeOptions) error {
	names := opts.files
	if len(names) == 0 {
		names = []string{""}
	}
	var rng *rand.Rand
	if opts.bootstrap {
		rng = newResampler(opts.seed, opts.seeded)
	}
	for _, name := range names {
		t, err := loadTable(name, opts.columns)
		if err != nil {
			return err
		}
		sums, err := summarize(t, rng)
		if err != nil {
			return &LoadError{Name: t.name, Err: err}
		}
		if err := writeReport(w, t, sums); err != nil {
			return err
		}
	}
	return nil
}

// A SelectionError reports a malformed -columns value.
type SelectionError struct {
	Value string
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid column selection %q: %s", e.Value, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// parseColumns turns a list like "1,3,2" into sorted, de-duplicated
// 0-based indexes.
func parseColumns(s string) ([]int, error) {
	seen := make(map[int]bool)
	var sel []int
	for _, cs := range strings.Split(s, ",") {
		cs = strings.TrimSpace(cs)
		n, err := strconv.Atoi(cs)
		if err != nil {
			return nil, &SelectionError{Value: s, Err: fmt.Errorf("%q is not an integer", cs)}
		}
		if n < 1 {
			return nil, &SelectionError{Value: s, Err: fmt.Errorf("columns start at 1; got %d", n)}
		}
		if !seen[n-1] {
			seen[n-1] = true
			sel = append(sel, n-1)
		}
	}
	sort.Ints(sel)
	return sel, nil
}

// bootstrapFlag is a boolean flag that also accepts a resample count, as
// in "-b 100". Only whether the count is nonzero matters.
type bootstrapFlag struct {
	enabled bool
}

func (b *bootstrapFlag) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(b.enabled)
}

func (b *bootstrapFlag) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		b.enabled = n != 0
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("want a boolean or a count; got %q", s)
	}
	b.enabled = v
	return nil
}

func (b *bootstrapFlag) IsBoolFlag() bool { return true }

// takesArg reports whether the argument following a bare -b is its count.
func (b *bootstrapFlag) takesArg(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}

// An optionalArgFlag is a boolean flag that may consume the next argument.
type optionalArgFlag interface {
	flag.Value
	takesArg(arg string) bool
}

// parseInterspersed parses fs from args, allowing flags to follow
// positional arguments, and returns the positional arguments. Everything
// after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) []string {
	var pos []string
	for {
		fs.Parse(args)
		rest := fs.Args()
		n := len(args) - len(rest)
		if n > 0 && args[n-1] == "--" {
			return append(pos, rest...)
		}
		if len(rest) == 0 {
			return pos
		}
		if n > 0 {
			if f := optionalArg(fs, args[n-1]); f != nil && f.takesArg(rest[0]) {
				f.Set(rest[0])
				args = rest[1:]
				continue
			}
		}
		pos = append(pos, rest[0])
		args = rest[1:]
	}
}

// optionalArg returns the flag named by arg if arg is a bare (no "=value")
// flag whose value type can take the next argument.
func optionalArg(fs *flag.FlagSet, arg string) optionalArgFlag {
	if !strings.HasPrefix(arg, "-") {
		return nil
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == "" || strings.Contains(name, "=") {
		return nil
	}
	f := fs.Lookup(name)
	if f == nil {
		return nil
	}
	v, _ := f.Value.(optionalArgFlag)
	return v
}
