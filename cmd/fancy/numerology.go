package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/numerology"
	"github.com/spf13/cobra"
)

func numerologyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numerology [NUMBER...]",
		Short: "Show digit sums, optionally filtered",
		Long: `Reduce numbers to their digit sum and single-digit sum. With --digit-sum or
--single-digit-sum only matching numbers are printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			numbers, err := inputNumbers(cmd, args, file)
			if err != nil {
				return err
			}

			var criteria numerology.Criteria
			if cmd.Flags().Changed("digit-sum") {
				v, _ := cmd.Flags().GetInt("digit-sum")
				criteria.DigitSum = &v
			}
			if cmd.Flags().Changed("single-digit-sum") {
				v, _ := cmd.Flags().GetInt("single-digit-sum")
				criteria.SingleDigitSum = &v
			}
			lucky, _ := cmd.Flags().GetBool("avoid-248")

			profiles := make([]numerology.Profile, 0, len(numbers))
			for _, p := range numerology.Filter(numbers, criteria) {
				if lucky && !numerology.AvoidsUnluckyDigits(p.Number) {
					continue
				}
				profiles = append(profiles, p)
			}

			return render(cmd.OutOrStdout(), outputFormat(), profiles, func(w *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(w, "NUMBER\tDIGIT SUM\tSINGLE DIGIT")
				for _, p := range profiles {
					_, _ = fmt.Fprintf(w, "%s\t%d\t%d\n", p.Number.Format(), p.DigitSum, p.SingleDigitSum)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV or text file to read numbers from (default: stdin)")
	cmd.Flags().Int("digit-sum", 0, "keep numbers with this digit sum")
	cmd.Flags().Int("single-digit-sum", 0, "keep numbers with this single-digit sum")
	cmd.Flags().Bool("avoid-248", false, "keep numbers with a 5, no 2, 4 or 8, and a clean odd-position sum")
	return cmd
}
