package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/discopt/seymour-go/ioformat"
	"github.com/discopt/seymour-go/params"
	"github.com/discopt/seymour-go/spmatrix"
)

func loadMatrix(path string, flags *rootFlags) (*spmatrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	domain := spmatrix.Binary
	if flags.ternary {
		domain = spmatrix.Ternary
	}

	switch flags.format {
	case "sparse":
		return ioformat.ReadSparseMatrix(f, domain)
	case "dense":
		return ioformat.ReadDenseMatrix(f, domain)
	default:
		return nil, fmt.Errorf("seymour: unknown --format %q (want sparse or dense)", flags.format)
	}
}

func loadParams(flags *rootFlags) (params.Params, error) {
	if flags.paramsFile == "" {
		return params.New(), nil
	}
	f, err := os.Open(flags.paramsFile)
	if err != nil {
		return params.Params{}, err
	}
	defer f.Close()
	return ioformat.ReadParams(f)
}

func parseDeadline(flags *rootFlags) (time.Time, error) {
	if flags.deadline == "" {
		return time.Time{}, nil
	}
	d, err := time.ParseDuration(flags.deadline)
	if err != nil {
		return time.Time{}, fmt.Errorf("seymour: bad --deadline: %w", err)
	}
	return time.Now().Add(d), nil
}

func newLogger(flags *rootFlags) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
		return nil, fmt.Errorf("seymour: bad --log-level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}
