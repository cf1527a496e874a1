package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cache"
	"github.com/Veraticus/fancy-numbers/internal/classification"
	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/spf13/cobra"
)

type bucketView struct {
	Name    model.BucketName    `json:"bucket" yaml:"bucket"`
	Numbers []model.PhoneNumber `json:"numbers" yaml:"numbers"`
	Count   int                 `json:"count" yaml:"count"`
}

type categorizeView struct {
	Buckets []bucketView `json:"buckets" yaml:"buckets"`
	Total   int          `json:"total" yaml:"total"`
	Skipped int          `json:"skipped" yaml:"skipped"`
}

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize [NUMBER...]",
		Short: "Sort numbers into buckets",
		Long: `Categorize numbers into buckets such as Super VIP, XY ABAB CDCD and Others.
Numbers come from arguments, --file or stdin (CSV or free text). Each bucket is
listed in descending numeric order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			numbers, err := inputNumbers(cmd, args, file)
			if err != nil {
				return err
			}

			workers, limit, progress := cfg.Categorize.Workers, cfg.Categorize.Limit, cfg.Categorize.Progress
			if cmd.Flags().Changed("workers") {
				workers, _ = cmd.Flags().GetInt("workers")
			}
			if cmd.Flags().Changed("limit") {
				limit, _ = cmd.Flags().GetInt("limit")
			}
			if cmd.Flags().Changed("progress") {
				progress, _ = cmd.Flags().GetBool("progress")
			}
			showAll, _ := cmd.Flags().GetBool("all")

			_, classifier, err := newClassifier()
			if err != nil {
				return err
			}

			opts := classification.Options{Classifier: classifier, Workers: workers}
			if progress {
				opts.Observer = cli.NewProgress(cmd.ErrOrStderr(), len(numbers), "Categorizing numbers...")
			}
			categorizer, err := classification.NewCategorizer(opts)
			if err != nil {
				return err
			}

			common.LogInfo("Categorizing numbers", common.Fields{"count": len(numbers), "workers": workers})
			result, err := categorizer.Categorize(cmd.Context(), numbers)
			if err != nil {
				return fmt.Errorf("categorization failed: %w", err)
			}
			if memo, ok := classifier.(*cache.Classifier); ok {
				stats := memo.Stats()
				common.LogDebug("classification cache", common.Fields{
					"hits":    stats.Hits,
					"misses":  stats.Misses,
					"entries": stats.Len,
				})
			}

			view := buildCategorizeView(result, showAll)
			out := cmd.OutOrStdout()
			err = render(out, outputFormat(), view, func(w *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(w, "BUCKET\tCOUNT\tNUMBERS")
				for _, b := range view.Buckets {
					_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", b.Name, b.Count, joinNumbers(b.Numbers, limit))
				}
				return nil
			})
			if err != nil || outputFormat() != "table" {
				return err
			}
			summary := fmt.Sprintf("Total: %d, skipped: %d, buckets: %d", view.Total, view.Skipped, len(result.NonEmpty()))
			_, err = fmt.Fprintln(out, "\n"+cli.RenderBox("Summary", summary))
			return err
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV or text file to read numbers from (default: stdin)")
	cmd.Flags().IntP("workers", "w", 0, "classify with this many goroutines (0 runs sequentially)")
	cmd.Flags().IntP("limit", "l", 20, "numbers to list per bucket in table output (0 lists all)")
	cmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	cmd.Flags().Bool("all", false, "include empty buckets")

	return cmd
}

func buildCategorizeView(result classification.Result, showAll bool) categorizeView {
	view := categorizeView{Total: result.Total, Skipped: result.Skipped}
	names := result.NonEmpty()
	if showAll {
		names = model.AllBuckets()
	}
	for _, name := range names {
		numbers := result.Buckets[name]
		view.Buckets = append(view.Buckets, bucketView{Name: name, Numbers: numbers, Count: len(numbers)})
	}
	return view
}

func joinNumbers(numbers []model.PhoneNumber, limit int) string {
	shown := numbers
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = string(n)
	}
	out := strings.Join(parts, " ")
	if len(shown) < len(numbers) {
		out += fmt.Sprintf(" ... (+%d more)", len(numbers)-len(shown))
	}
	return out
}
