package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/alphanum"
	"github.com/maxpoletaev/alphanum/internal/generic"
	"github.com/maxpoletaev/alphanum/internal/heap"
	"github.com/maxpoletaev/alphanum/internal/multierror"
	"github.com/maxpoletaev/alphanum/internal/skiplist"
)

const stdinName = "-"

var errDisorder = errors.New("input is not sorted")

// run reads all inputs, then sorts or checks them according to args. Inputs that
// cannot be read are skipped and reported in the returned error after the rest
// of the output has been written.
func run(args cliArgs, stdin io.Reader, stdout io.Writer, logger kitlog.Logger) error {
	files := args.files
	if len(files) == 0 {
		files = []string{stdinName}
	}

	errs := multierror.New[string]()
	lines := make([]string, 0)

	for _, name := range files {
		read, err := readInput(name, stdin)
		if err != nil {
			level.Warn(logger).Log("msg", "failed to read input", "name", name, "err", err)
			errs.Add(name, err)

			continue
		}

		level.Debug(logger).Log("msg", "input read", "name", name, "lines", len(read))
		lines = append(lines, read...)
	}

	if args.skipBlank {
		lines = generic.Filter(lines, func(s string) bool { return s != "" })
	}

	cmp := alphanum.Comparator[string](alphanum.Compare)
	if args.reverse {
		cmp = alphanum.Inverse(cmp)
	}

	if args.check {
		if sorted, pos := generic.IsSortedFunc(lines, cmp, false); !sorted {
			level.Info(logger).Log("msg", "disorder", "line", pos+1, "text", lines[pos])
			return errDisorder
		}

		return errs.Combined()
	}

	w := bufio.NewWriter(stdout)

	var err error
	if args.unique {
		err = writeUnique(w, lines, cmp, args.count, args.limit)
	} else if args.limit > 0 && args.limit < len(lines) {
		err = writeFirst(w, lines, cmp, args.limit)
	} else {
		err = writeSorted(w, lines, args.reverse)
	}

	if err == nil {
		err = w.Flush()
	}

	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return errs.Combined()
}

func writeSorted(w io.Writer, lines []string, reverse bool) error {
	if reverse {
		alphanum.SortReverse(lines)
	} else {
		alphanum.Sort(lines)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// writeFirst writes the first n lines in the order of cmp without sorting the whole input.
// The heap keeps the n smallest lines seen so far with the largest of them on top.
// Lines that compare equal may come out in any order.
func writeFirst(w io.Writer, lines []string, cmp alphanum.Comparator[string], n int) error {
	h := heap.New(alphanum.LessFunc(alphanum.Inverse(cmp)), n)

	for _, line := range lines {
		if h.Len() < n {
			h.Push(line)
		} else if cmp(line, h.Peek()) < 0 {
			h.ReplaceTop(line)
		}
	}

	first := make([]string, h.Len())
	for i := len(first) - 1; i >= 0; i-- {
		first[i] = h.Pop()
	}

	for _, line := range first {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func writeUnique(w io.Writer, lines []string, cmp alphanum.Comparator[string], withCount bool, limit int) error {
	list := skiplist.New[string, int](skiplist.Comparator[string](cmp))

	for _, line := range lines {
		list.Upsert(line, func(count int, _ bool) int {
			return count + 1
		})
	}

	written := 0

	for it := list.Scan(); it.HasNext() && (limit <= 0 || written < limit); written++ {
		line, count := it.Next()

		var err error
		if withCount {
			_, err = fmt.Fprintf(w, "%d %s\n", count, line)
		} else {
			_, err = fmt.Fprintln(w, line)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func readInput(name string, stdin io.Reader) ([]string, error) {
	if name == stdinName {
		return readLines(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
