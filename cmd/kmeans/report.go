package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/TrevorS/kmeans"
)

// resultFile is the JSON document written by --output. It carries the points
// as well so a plotting tool needs nothing else.
type resultFile struct {
	K                int         `json:"k"`
	Seed             uint64      `json:"seed"`
	Iterations       int         `json:"iterations"`
	Converged        bool        `json:"converged"`
	Inertia          float64     `json:"inertia"`
	EmptyClusters    int         `json:"empty_clusters"`
	InitialCentroids [][]float64 `json:"initial_centroids"`
	Centroids        [][]float64 `json:"centroids"`
	Labels           []int       `json:"labels"`
	Points           [][]float64 `json:"points"`
}

func writeResultJSON(path string, data [][]float64, cfg kmeans.Config, result *kmeans.Result) error {
	doc := resultFile{
		K:                cfg.K,
		Seed:             cfg.Seed,
		Iterations:       result.Iterations,
		Converged:        result.Converged,
		Inertia:          result.Inertia,
		EmptyClusters:    result.EmptyClusters,
		InitialCentroids: result.InitialCentroids,
		Centroids:        result.Centroids,
		Labels:           result.Labels,
		Points:           data,
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// traceIteration renders one iteration of the run for --trace.
func traceIteration(w io.Writer, s kmeans.IterationStats) {
	line := fmt.Sprintf("iteration %d  inertia=%.6g  shift=%.6g", s.Iteration, s.Inertia, s.Shift)
	if len(s.Empty) > 0 {
		line += fmt.Sprintf("  empty=%v", s.Empty)
	}
	fmt.Fprint(w, pterm.Info.Sprintln(line))
	for j, c := range s.Centroids {
		fmt.Fprintf(w, "    centroid %d: %s\n", j, formatVector(c))
	}
}

// printTrace writes the --trace block: the starting centroids, the buffered
// per-iteration lines and how the loop ended.
func printTrace(w io.Writer, result *kmeans.Result, iterations []byte) {
	fmt.Fprint(w, pterm.Info.Sprintln("initial centroids"))
	for j, c := range result.InitialCentroids {
		fmt.Fprintf(w, "    centroid %d: %s\n", j, formatVector(c))
	}
	_, _ = w.Write(iterations)
	if result.Converged {
		fmt.Fprint(w, pterm.Info.Sprintf("convergence reached at iteration %d\n", result.Iterations))
	} else {
		fmt.Fprint(w, pterm.Info.Sprintf("iteration limit reached after %d iterations\n", result.Iterations))
	}
}

// printSummary renders the per-cluster table and the run outcome.
func printSummary(w io.Writer, cfg kmeans.Config, result *kmeans.Result) error {
	sizes := make([]int, len(result.Centroids))
	for _, l := range result.Labels {
		sizes[l]++
	}

	data := pterm.TableData{{"Cluster", "Size", "Centroid"}}
	for j, c := range result.Centroids {
		data = append(data, []string{strconv.Itoa(j), strconv.Itoa(sizes[j]), formatVector(c)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(w, table)

	outcome := fmt.Sprintf("Converged after %d iterations", result.Iterations)
	printer := pterm.Success
	if !result.Converged {
		outcome = fmt.Sprintf("Stopped at the iteration limit (%d) without converging", result.Iterations)
		printer = pterm.Warning
	}
	fmt.Fprint(w, printer.Sprintln(outcome))
	fmt.Fprintf(w, "Points: %d  K: %d  Seed: %d  Inertia: %.6g\n", len(result.Labels), cfg.K, cfg.Seed, result.Inertia)
	if result.EmptyClusters > 0 {
		fmt.Fprint(w, pterm.Warning.Sprintf("Empty clusters kept their previous centroid %d time(s)\n", result.EmptyClusters))
	}
	return nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
