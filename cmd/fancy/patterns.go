package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/spf13/cobra"
)

type patternView struct {
	Name        model.PatternName `json:"name" yaml:"name"`
	Family      pattern.Family    `json:"family" yaml:"family"`
	Description string            `json:"description" yaml:"description"`
}

type vocabularyView struct {
	Patterns []patternView      `json:"patterns" yaml:"patterns"`
	Buckets  []model.BucketName `json:"buckets" yaml:"buckets"`
}

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "List the pattern catalog and buckets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			family, _ := cmd.Flags().GetString("family")

			detector, err := pattern.NewDetector()
			if err != nil {
				return err
			}

			view := vocabularyView{Buckets: model.AllBuckets()}
			for _, m := range detector.Matchers() {
				if family != "" && string(m.Family) != family {
					continue
				}
				view.Patterns = append(view.Patterns, patternView{Name: m.Name, Family: m.Family, Description: m.Description})
			}

			return render(cmd.OutOrStdout(), outputFormat(), view, func(w *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(w, cli.FormatTitle("Pattern catalog"))
				_, _ = fmt.Fprintln(w, "PATTERN\tFAMILY\tRULE")
				_, _ = fmt.Fprintln(w, "───────\t──────\t────")
				for _, p := range view.Patterns {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Family, p.Description)
				}
				_, _ = fmt.Fprintf(w, "\n%d patterns, %d buckets\n", len(view.Patterns), len(view.Buckets))
				return nil
			})
		},
	}

	cmd.Flags().String("family", "", "only list patterns of this family (block, run, sequence, symmetry, literal, year, composite, digit-mix)")
	return cmd
}
