package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/seqmine/internal/paths"
	"github.com/mesh-intelligence/seqmine/internal/sqlite"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func newRunsCmd() *cobra.Command {
	runs := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored mining runs",
		RunE:  runRunsList,
	}
	runs.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a stored run and its patterns",
		Args:  cobra.ExactArgs(1),
		RunE:  runRunsShow,
	})
	return runs
}

// openRunStore opens the run store at the resolved data directory. The
// caller must Close the returned store.
func openRunStore() (*sqlite.Store, error) {
	configDir := paths.ResolveConfigDir(flags.configDir)
	v, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	dataDir := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	store := sqlite.NewStore()
	if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("opening run store: %w", err)
	}
	return store, nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	store, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No stored runs")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s  min_support=%.3f  transactions=%d  %s\n",
			run.RunID, run.CreatedAt.Format(time.RFC3339), run.MinSupport,
			run.TxCount, run.Source)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	store, err := openRunStore()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(args[0])
	if err != nil {
		return err
	}
	patterns, err := store.Patterns(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Run      *types.Run            `json:"run"`
			Patterns []types.StoredPattern `json:"patterns"`
		}{Run: run, Patterns: patterns})
	}

	fmt.Fprintf(out, "Run %s\n", run.RunID)
	fmt.Fprintf(out, "  source:       %s\n", run.Source)
	fmt.Fprintf(out, "  min support:  %.3f\n", run.MinSupport)
	fmt.Fprintf(out, "  transactions: %d\n", run.TxCount)
	fmt.Fprintf(out, "  created:      %s\n", run.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "  patterns:     %d\n", len(patterns))
	for _, p := range patterns {
		fmt.Fprintf(out, "    level=%d  %s  support=%d\n",
			p.Level, strings.Join(p.Pattern, " "), p.Support)
	}
	return nil
}
