package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrevorS/kmeans"
)

// runOptions is the resolved configuration of one `kmeans run` invocation.
type runOptions struct {
	// Data source: Input wins over Generate.
	Input    string
	Generate string
	Samples  int
	Centers  int
	Dims     int
	Std      float64
	DataSeed uint64

	Engine kmeans.Config

	Output string
	Trace  bool

	Verbosity int
	JSONLogs  bool
}

// loadRunOptions layers flags over KMEANS_* environment variables over the
// optional config file over flag defaults.
func loadRunOptions(cmd *cobra.Command) (runOptions, error) {
	v := viper.New()
	v.SetEnvPrefix("KMEANS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return runOptions{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return runOptions{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	seed := v.GetUint64("seed")
	if !v.IsSet("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	engine := kmeans.DefaultConfig()
	engine.K = v.GetInt("k")
	engine.MaxIterations = v.GetInt("max-iter")
	engine.Tolerance = v.GetFloat64("tol")
	engine.Seed = seed
	engine.Workers = v.GetInt("workers")

	return runOptions{
		Input:     v.GetString("input"),
		Generate:  v.GetString("generate"),
		Samples:   v.GetInt("samples"),
		Centers:   v.GetInt("centers"),
		Dims:      v.GetInt("dims"),
		Std:       v.GetFloat64("std"),
		DataSeed:  v.GetUint64("data-seed"),
		Engine:    engine,
		Output:    v.GetString("output"),
		Trace:     v.GetBool("trace"),
		Verbosity: v.GetInt("verbose"),
		JSONLogs:  v.GetBool("json-logs"),
	}, nil
}
