package main

import (
	"github.com/urfave/cli/v2"
	"github.com/uyouii/uutest/uutest"
)

var (
	InputFlag = cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file of whitespace separated values, \"-\" for stdin",
	}
	CaseFlag = cli.StringFlag{
		Name:  "case",
		Usage: "generate a demo sample instead of reading one (unimodal|multimodal)",
	}
	SampleSizeFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of values drawn per mode of a demo sample",
		Value: 1000,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed of a demo sample",
		Value: 1,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of the uniformity test",
		Value: uutest.DefaultAlpha,
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "histogram bins of the empirical CDF, 0 for one per value",
	}
	MaxDepthFlag = cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum recursion depth of the decomposition",
		Value: uutest.DefaultMaxDepth,
	}
	ParallelFlag = cli.BoolFlag{
		Name:  "parallel",
		Usage: "evaluate candidate partitions concurrently",
	}
	TimeoutFlag = cli.DurationFlag{
		Name:  "timeout",
		Usage: "abort the decomposition after this long, 0 for no limit",
	}
	PlotFlag = cli.StringFlag{
		Name:  "plot",
		Usage: "write an HTML page comparing the sample with the fitted model",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
		Value: "warn",
	}
)
