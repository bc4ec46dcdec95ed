package main

import (
	"errors"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	args := parseCliArgs()

	if !args.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	if err := run(args, os.Stdin, os.Stdout, logger); err != nil {
		if !errors.Is(err, errDisorder) {
			level.Error(logger).Log("msg", "failed to sort input", "err", err)
		}

		os.Exit(1)
	}
}
