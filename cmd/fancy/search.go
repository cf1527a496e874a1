package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/Veraticus/fancy-numbers/internal/search"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [NUMBER...]",
		Short: "Filter numbers by digits, sums, patterns, birthdate or vehicle plate",
		Long: `Search a list of numbers with storefront-style filters. Every filter given
must pass. Placements use DIGIT@POSITION with 0-indexed positions, e.g. 9@0.`,
		Example: `  fancy search -f numbers.csv --birthdate 1990-08-15
  fancy search -f numbers.csv --pattern "Tetra Number" --pattern Palindrome
  fancy search -f numbers.csv --digits 786 --single-digit-sum 9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			numbers, err := inputNumbers(cmd, args, file)
			if err != nil {
				return err
			}

			opts, err := searchOptions(cmd)
			if err != nil {
				return err
			}

			detector, err := pattern.NewDetector()
			if err != nil {
				return err
			}
			found, err := search.Filter(detector, numbers, opts)
			if err != nil {
				return common.NewUserError("invalid search", err)
			}

			return render(cmd.OutOrStdout(), outputFormat(), found, func(w *tabwriter.Writer) error {
				for _, n := range found {
					_, _ = fmt.Fprintln(w, n.Format())
				}
				_, _ = fmt.Fprintf(w, "\n%s\n", cli.FormatInfo(fmt.Sprintf("%d of %d numbers matched", len(found), len(numbers))))
				return nil
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV or text file to read numbers from (default: stdin)")
	cmd.Flags().String("digits", "", "digits that must all appear")
	cmd.Flags().StringSlice("place", nil, "DIGIT@POSITION placements")
	cmd.Flags().String("most-contains", "", "keep numbers with the most occurrences of this digit")
	cmd.Flags().String("repeating-digit", "", "require four of this digit in a row")
	cmd.Flags().Bool("sequential", false, "require an ascending run of four")
	cmd.Flags().Bool("repeating", false, "require an ABAB window")
	cmd.Flags().Int("digit-sum", 0, "required digit sum")
	cmd.Flags().Int("single-digit-sum", 0, "required single-digit sum")
	cmd.Flags().StringArray("pattern", nil, "catalog pattern name; any listed pattern may match")
	_ = cmd.RegisterFlagCompletionFunc("pattern", completePatterns)
	cmd.Flags().StringP("query", "q", "", "substring of the number or its pattern names")
	cmd.Flags().String("birthdate", "", "date of birth as YYYY-MM-DD")
	cmd.Flags().String("vehicle", "", "vehicle registration plate")

	return cmd
}

// completePatterns offers the catalog vocabulary for --pattern.
func completePatterns(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, name := range model.AllPatterns() {
		if strings.HasPrefix(strings.ToLower(string(name)), strings.ToLower(toComplete)) {
			names = append(names, string(name))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func searchOptions(cmd *cobra.Command) (search.Options, error) {
	flags := cmd.Flags()
	var opts search.Options

	opts.Digits, _ = flags.GetString("digits")
	opts.MostContains, _ = flags.GetString("most-contains")
	opts.RepeatingDigit, _ = flags.GetString("repeating-digit")
	opts.Sequential, _ = flags.GetBool("sequential")
	opts.Repeating, _ = flags.GetBool("repeating")
	opts.Patterns, _ = flags.GetStringArray("pattern")
	opts.Query, _ = flags.GetString("query")
	opts.Birthdate, _ = flags.GetString("birthdate")
	opts.Vehicle, _ = flags.GetString("vehicle")

	if flags.Changed("digit-sum") {
		v, _ := flags.GetInt("digit-sum")
		opts.DigitSum = &v
	}
	if flags.Changed("single-digit-sum") {
		v, _ := flags.GetInt("single-digit-sum")
		opts.SingleDigitSum = &v
	}

	places, _ := flags.GetStringSlice("place")
	for _, raw := range places {
		p, err := parsePlacement(raw)
		if err != nil {
			return search.Options{}, err
		}
		opts.Placements = append(opts.Placements, p)
	}
	return opts, nil
}

func parsePlacement(raw string) (search.Placement, error) {
	digit, pos, ok := strings.Cut(raw, "@")
	if !ok {
		return search.Placement{}, fmt.Errorf("%w: placement %q must look like DIGIT@POSITION", common.ErrInvalidArgument, raw)
	}
	position, err := strconv.Atoi(pos)
	if err != nil {
		return search.Placement{}, fmt.Errorf("%w: placement position %q: %w", common.ErrInvalidArgument, pos, err)
	}
	return search.Placement{Digit: digit, Position: position}, nil
}
