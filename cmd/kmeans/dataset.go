package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TrevorS/kmeans/synth"
)

// loadDataset returns the points selected by opts: the CSV file when Input is
// set, otherwise a generated dataset.
func loadDataset(opts runOptions) ([][]float64, error) {
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		return readCSV(f)
	}

	switch opts.Generate {
	case "blobs":
		cfg := synth.DefaultBlobConfig()
		cfg.Samples = opts.Samples
		cfg.Centers = opts.Centers
		cfg.Dims = opts.Dims
		cfg.ClusterStd = opts.Std
		cfg.Seed = opts.DataSeed
		points, _, err := synth.Blobs(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to generate blobs: %w", err)
		}
		return points, nil
	case "uniform":
		points, err := synth.Uniform(opts.Samples, opts.Dims, 0, 1, opts.DataSeed)
		if err != nil {
			return nil, fmt.Errorf("failed to generate uniform points: %w", err)
		}
		return points, nil
	default:
		return nil, fmt.Errorf("unknown generator %q (want blobs or uniform)", opts.Generate)
	}
}

// readCSV parses one point per record. A first record in which no field parses
// as a number is treated as a header and skipped. Row length checks are left to
// the engine.
func readCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var points [][]float64
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		p, err := parseRecord(record)
		if err != nil {
			if line == 1 && isHeader(record) {
				continue
			}
			return nil, fmt.Errorf("CSV record %d: %w", line, err)
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, errors.New("CSV input contains no points")
	}
	return points, nil
}

func parseRecord(record []string) ([]float64, error) {
	p := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		p[i] = v
	}
	return p, nil
}

func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}
	return true
}
