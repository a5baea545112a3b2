package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sklinak/rowpipe/internal/config"
	"github.com/sklinak/rowpipe/internal/logging"
	"github.com/sklinak/rowpipe/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.LoadOrDefault()

	fs := flag.NewFlagSet("rowpipe", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	workers := fs.Int("workers", cfg.Pool.Workers, "worker pool size")
	suffix := fs.String("suffix", cfg.Output.Suffix, "output file name suffix")
	configPath := fs.String("config", "", "optional YAML config file")
	verbose := fs.Bool("v", false, "verbose development logging")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rowpipe [flags] <image>\n\n")
		fmt.Fprintf(os.Stderr, "Inverts every pixel of <image> across a pool of workers and\n")
		fmt.Fprintf(os.Stderr, "writes the result next to the input.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	// Flags set explicitly on the command line win over env and file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Pool.Workers = *workers
		case "suffix":
			cfg.Output.Suffix = *suffix
		case "v":
			cfg.Logging.Development = *verbose
			cfg.Logging.Level = "debug"
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rowpipe: bad log config: %v\n", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is unactionable

	p, err := pipeline.New(pipeline.Options{
		Workers: cfg.Pool.Workers,
		Suffix:  cfg.Output.Suffix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("invalid pipeline options", zap.Error(err))
		return 1
	}

	res, err := p.Run(input)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}

	fmt.Println(res.OutputPath)
	return 0
}
