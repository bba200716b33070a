package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"github.com/uyouii/uutest/model"
	"github.com/uyouii/uutest/utils"
	"github.com/uyouii/uutest/uutest"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "uutest",
		HelpName:  "uutest",
		Usage:     "test a sample for unimodality and fit a unimodal-uniform model",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&InputFlag,
			&CaseFlag,
			&SampleSizeFlag,
			&SeedFlag,
			&AlphaFlag,
			&BinsFlag,
			&MaxDepthFlag,
			&ParallelFlag,
			&TimeoutFlag,
			&PlotFlag,
			&LogLevelFlag,
		},
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger, err := utils.NewLogger(c.String(LogLevelFlag.Name))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := utils.WithLogger(c.Context, logger)
	if timeout := c.Duration(TimeoutFlag.Name); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var values []float64
	if name := c.String(CaseFlag.Name); name != "" {
		values, err = demoSample(name, c.Int(SampleSizeFlag.Name), c.Uint64(SeedFlag.Name))
	} else {
		values, err = readValues(c.String(InputFlag.Name), c.App.Reader)
	}
	if err != nil {
		return err
	}

	cfg := &uutest.Config{
		Alpha:    c.Float64(AlphaFlag.Name),
		BinCount: c.Int(BinsFlag.Name),
		MaxDepth: c.Int(MaxDepthFlag.Name),
		Parallel: c.Bool(ParallelFlag.Name),
	}
	m, err := uutest.FitUnimodal(ctx, values, cfg)
	if err != nil {
		return err
	}
	logger.Debug("fit done", zap.String("model", m.DebugString()))

	printModel(c.App.Writer, len(values), m)

	if path := c.String(PlotFlag.Name); path != "" {
		if err := writePlot(path, values, m, cfg.BinCount); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "plot written to %s\n", path)
	}
	return nil
}

func printModel(w io.Writer, n int, m *model.UUModel) {
	if !m.Unimodal() {
		fmt.Fprintf(w, "values: %d, result: multimodal\n", n)
		return
	}
	fmt.Fprintf(w, "values: %d, result: unimodal\n", n)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "start", "end", "weight", "density"})
	for i, interval := range m.Intervals {
		density := uutest.EvaluatePDF(interval.Start, m.Intervals, m.Weights)
		t.AppendRow(table.Row{
			i,
			utils.FormatFloat(interval.Start, 4),
			utils.FormatFloat(interval.End, 4),
			utils.FormatFloat(m.Weights[i], 4),
			utils.FormatFloat(density, 4),
		})
	}
	t.AppendFooter(table.Row{"", "", "", utils.FormatFloat(floats.Sum(m.Weights), 4), ""})
	t.Render()

	if q := uutest.Quantile(m, 0.5); q != nil {
		fmt.Fprintf(w, "median: %v\n", utils.FormatFloat(q.Value, 4))
	}
}
