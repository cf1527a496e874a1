package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/fancy-numbers/internal/cli"
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Pull ten-digit numbers out of CSV text",
		Long: `Extract every comma-separated cell that holds exactly ten digits once
punctuation is removed. Reads --file or stdin. Duplicates are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			numbers, err := readNumbers(cmd, file)
			if err != nil {
				return err
			}

			err = render(cmd.OutOrStdout(), outputFormat(), numbers, func(w *tabwriter.Writer) error {
				for _, n := range numbers {
					_, _ = fmt.Fprintln(w, n)
				}
				return nil
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Extracted %d numbers", len(numbers))))
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "CSV or text file to read (default: stdin)")
	return cmd
}
