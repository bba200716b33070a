package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// readValues parses whitespace separated floats from path, or from stdin
// when path is empty or "-".
func readValues(path string, stdin io.Reader) ([]float64, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	var res []float64
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", len(res))
		}
		res = append(res, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return res, nil
}

// demoSample draws n values from N(0, 1), followed for the multimodal case
// by n values from N(7, 1).
func demoSample(name string, n int, seed uint64) ([]float64, error) {
	if n <= 0 {
		return nil, errors.Newf("invalid sample size %d", n)
	}
	src := rand.NewSource(seed)
	modes := []distuv.Normal{{Mu: 0, Sigma: 1, Src: src}}
	switch name {
	case "unimodal":
	case "multimodal":
		modes = append(modes, distuv.Normal{Mu: 7, Sigma: 1, Src: src})
	default:
		return nil, errors.Newf("unknown case %q", name)
	}

	res := make([]float64, 0, n*len(modes))
	for _, mode := range modes {
		for i := 0; i < n; i++ {
			res = append(res, mode.Rand())
		}
	}
	return res, nil
}
