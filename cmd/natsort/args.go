package main

import "flag"

type cliArgs struct {
	reverse   bool
	unique    bool
	count     bool
	check     bool
	skipBlank bool
	verbose   bool
	limit     int
	files     []string
}

func parseCliArgs() cliArgs {
	args := cliArgs{}

	flag.BoolVar(&args.reverse, "r", false, "sort in descending order")
	flag.BoolVar(&args.unique, "u", false, "output only the first of lines that compare equal")
	flag.BoolVar(&args.count, "c", false, "prefix lines with the number of occurrences (implies -u)")
	flag.BoolVar(&args.check, "check", false, "check whether the input is sorted instead of sorting it")
	flag.BoolVar(&args.skipBlank, "skip-blank", false, "ignore empty lines")
	flag.BoolVar(&args.verbose, "verbose", false, "verbose mode")
	flag.IntVar(&args.limit, "n", 0, "output at most n lines (0 means no limit)")

	flag.Parse()

	args.files = flag.Args()
	if args.count {
		args.unique = true
	}

	return args
}
