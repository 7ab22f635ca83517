package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/seqmine/internal/dataset"
	"github.com/mesh-intelligence/seqmine/internal/encode"
	"github.com/mesh-intelligence/seqmine/internal/gsp"
	"github.com/mesh-intelligence/seqmine/internal/paths"
	"github.com/mesh-intelligence/seqmine/internal/sqlite"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

func newMineCmd() *cobra.Command {
	var (
		minSupport float64
		maxK       int
		workers    int
		prefilter  bool
		format     string
		output     string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "mine <dataset>",
		Short: "Mine frequent sequential patterns from a dataset",
		Long: "Mine reads a transaction dataset (JSON or CSV), discovers the patterns\n" +
			"occurring contiguously in at least min-support of the transactions, and\n" +
			"writes them level by level.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir := paths.ResolveConfigDir(flags.configDir)
			v, err := loadConfig(configDir)
			if err != nil {
				return err
			}

			cfg := types.Config{
				MinSupport: minSupport,
				MaxK:       maxK,
				Workers:    workers,
			}
			// Flags win over config.yaml; defaults come from the config.
			if !cmd.Flags().Changed("min-support") {
				cfg.MinSupport = v.GetFloat64(cfgKeyMinSupport)
			}
			if !cmd.Flags().Changed("max-k") {
				cfg.MaxK = v.GetInt(cfgKeyMaxK)
			}
			if !cmd.Flags().Changed("workers") {
				cfg.Workers = v.GetInt(cfgKeyWorkers)
			}
			cfg.Prefilter = resolvePrefilter(cmd, prefilter, v)
			if err := cfg.Validate(); err != nil {
				return err
			}

			raw, err := dataset.ReadTransactions(args[0])
			if err != nil {
				return err
			}

			mapper := encode.NewMapper()
			miner, err := gsp.NewMiner(mapper.EncodeAll(raw))
			if err != nil {
				return fmt.Errorf("preparing miner: %w", err)
			}

			levels, err := miner.Search(cfg)
			if err != nil {
				return err
			}

			if flags.jsonMode && !cmd.Flags().Changed("format") {
				format = dataset.FormatJSON
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := dataset.WriteLevels(out, levels, mapper, format); err != nil {
				return err
			}

			if save {
				id, err := saveRun(v, args[0], cfg, len(raw), levels, mapper)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", id)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minSupport, "min-support", defaultMinSupport, "minimum support as a fraction of the transaction count, in (0,1]")
	cmd.Flags().IntVar(&maxK, "max-k", 0, "maximum pattern length to mine (0 = unlimited)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size for support counting (0 = one per CPU)")
	cmd.Flags().BoolVar(&prefilter, "prefilter", false, "enable the presence prefilter (default from "+envPrefilter+" or config)")
	cmd.Flags().StringVar(&format, "format", dataset.FormatText, "output format: text, json, or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "persist the run to the run store")

	return cmd
}

// resolvePrefilter picks the prefilter switch: flag, then environment,
// then config.yaml. The prefilter never changes results, only cost.
func resolvePrefilter(cmd *cobra.Command, flagValue bool, v *viper.Viper) bool {
	if cmd.Flags().Changed("prefilter") {
		return flagValue
	}
	if env, ok := os.LookupEnv(envPrefilter); ok {
		return env == "1" || strings.EqualFold(env, "true")
	}
	return v.GetBool(cfgKeyPrefilter)
}

// saveRun persists a completed mining run to the run store.
func saveRun(v *viper.Viper, source string, cfg types.Config, txCount int, levels []types.Level, mapper *encode.Mapper) (string, error) {
	flat, err := dataset.Flatten(levels, mapper)
	if err != nil {
		return "", err
	}

	dataDir := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	store := sqlite.NewStore()
	if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
		return "", fmt.Errorf("opening run store: %w", err)
	}
	defer store.Close()

	run := &types.Run{Source: source, MinSupport: cfg.MinSupport, TxCount: txCount}
	id, err := store.SaveRun(run, flat)
	if err != nil {
		return "", fmt.Errorf("saving run: %w", err)
	}
	return id, nil
}
