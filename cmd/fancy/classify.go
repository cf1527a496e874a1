package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/numerology"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/spf13/cobra"
)

type classifyRow struct {
	Number         model.PhoneNumber   `json:"number" yaml:"number"`
	Patterns       []model.PatternName `json:"patterns" yaml:"patterns"`
	DigitSum       int                 `json:"digit_sum" yaml:"digit_sum"`
	SingleDigitSum int                 `json:"single_digit_sum" yaml:"single_digit_sum"`
}

type explainRow struct {
	Number  model.PhoneNumber `json:"number" yaml:"number"`
	Matches model.MatchResult `json:"matches" yaml:"matches"`
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify NUMBER...",
		Short: "Show the patterns each number matches",
		Long: `Classify one or more ten-digit numbers against the full pattern catalog.
Separators are ignored, so 987-654-3210 and (987) 654 3210 are both accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseArgs(args)
			if err != nil {
				return err
			}

			detector, classifier, err := newClassifier()
			if err != nil {
				return err
			}

			if explain, _ := cmd.Flags().GetBool("explain"); explain {
				return renderExplain(cmd, detector, numbers)
			}

			rows := make([]classifyRow, 0, len(numbers))
			for _, n := range numbers {
				profile, err := numerology.Reduce(n)
				if err != nil {
					return err
				}
				rows = append(rows, classifyRow{
					Number:         n,
					Patterns:       classifier.Classify(n),
					DigitSum:       profile.DigitSum,
					SingleDigitSum: profile.SingleDigitSum,
				})
			}

			badges, _ := cmd.Flags().GetBool("badges")
			if badges && outputFormat() == "table" {
				out := cmd.OutOrStdout()
				for _, row := range rows {
					fmt.Fprintf(out, "%s  %s\n", cli.FormatNumber(row.Number), cli.FormatBadges(detector, row.Patterns))
				}
				return nil
			}

			return render(cmd.OutOrStdout(), outputFormat(), rows, func(w *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(w, "NUMBER\tSUM\tROOT\tPATTERNS")
				for _, row := range rows {
					names := make([]string, len(row.Patterns))
					for i, p := range row.Patterns {
						names[i] = string(p)
					}
					_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", row.Number.Format(), row.DigitSum, row.SingleDigitSum, strings.Join(names, ", "))
				}
				return nil
			})
		},
	}

	cmd.Flags().Bool("badges", false, "render colored pattern badges instead of a table")
	cmd.Flags().Bool("explain", false, "report every catalog pattern, matched or not")
	return cmd
}

// renderExplain prints the full match result of each number, misses included.
func renderExplain(cmd *cobra.Command, detector *pattern.Detector, numbers []model.PhoneNumber) error {
	rows := make([]explainRow, len(numbers))
	for i, n := range numbers {
		rows[i] = explainRow{Number: n, Matches: detector.Result(n)}
	}

	return render(cmd.OutOrStdout(), outputFormat(), rows, func(w *tabwriter.Writer) error {
		for _, row := range rows {
			_, _ = fmt.Fprintf(w, "%s\t%d of %d patterns\n", row.Number.Format(), len(row.Matches.Matched()), detector.Count())
			for _, name := range detector.Names() {
				mark := "-"
				if row.Matches[name] {
					mark = "yes"
				}
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", name, mark)
			}
		}
		return nil
	})
}
