package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cache"
	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/config"
	"github.com/Veraticus/fancy-numbers/internal/extract"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// outputFormat returns the configured output format, or table before config loads.
func outputFormat() string {
	if cfg == nil {
		return "table"
	}
	return cfg.Output.Format
}

// parseArgs turns positional arguments into numbers, rejecting any that are not ten digits.
func parseArgs(args []string) ([]model.PhoneNumber, error) {
	numbers := make([]model.PhoneNumber, 0, len(args))
	for _, arg := range args {
		n, err := model.ParsePhoneNumber(arg)
		if err != nil {
			return nil, common.NewUserError("not a ten-digit number", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// readNumbers extracts numbers from --file, or from stdin when no file is given.
func readNumbers(cmd *cobra.Command, file string) ([]model.PhoneNumber, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "" && file != "-" {
		f, err := os.Open(config.ExpandPath(file))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	numbers, err := extract.Reader(r)
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, common.NewUserError("input holds no ten-digit numbers", common.ErrNoNumbers)
	}
	return numbers, nil
}

// inputNumbers prefers positional arguments over --file/stdin.
func inputNumbers(cmd *cobra.Command, args []string, file string) ([]model.PhoneNumber, error) {
	if len(args) > 0 {
		return parseArgs(args)
	}
	return readNumbers(cmd, file)
}

// newClassifier returns the detector and, when a cache size is configured, a
// memoizing classifier in front of it.
func newClassifier() (*pattern.Detector, pattern.Classifier, error) {
	detector, err := pattern.NewDetector()
	if err != nil {
		return nil, nil, err
	}
	if cfg == nil || cfg.Cache.Size == 0 {
		return detector, detector, nil
	}
	memo, err := cache.New(detector, cfg.Cache.Size)
	if err != nil {
		return nil, nil, err
	}
	return detector, memo, nil
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(w io.Writer, format string, v any, table func(*tabwriter.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if err := table(tw); err != nil {
			return err
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: output format %q", common.ErrInvalidArgument, format)
	}
}
