package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seqmine/internal/dataset"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <dataset>",
		Short: "Summarize a transaction dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := dataset.ReadTransactions(args[0])
			if err != nil {
				return err
			}

			summary := dataset.Summarize(raw)
			out := cmd.OutOrStdout()

			if flags.jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			fmt.Fprintf(out, "Transactions:   %d\n", summary.Transactions)
			fmt.Fprintf(out, "Distinct items: %d\n", summary.DistinctItems)
			fmt.Fprintf(out, "Total items:    %d\n", summary.TotalItems)
			fmt.Fprintf(out, "Length:         min=%d max=%d mean=%.2f median~%.1f p90~%.1f\n",
				summary.MinLength, summary.MaxLength, summary.MeanLength,
				summary.MedianLength, summary.P90Length)
			return nil
		},
	}
}
