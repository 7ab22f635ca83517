package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/seqmine/internal/paths"
	"github.com/mesh-intelligence/seqmine/internal/sqlite"
	"github.com/mesh-intelligence/seqmine/pkg/types"
)

// configFile holds the structure written to config.yaml by init when the
// data directory is specified explicitly.
type configFile struct {
	MinSupport float64 `yaml:"min_support"`
	MaxK       int     `yaml:"max_k"`
	Workers    int     `yaml:"workers"`
	Prefilter  bool    `yaml:"prefilter"`
	DataDir    string  `yaml:"data_dir,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize seqmine configuration and run store",
		Long:  "Create configuration and data directories, then initialize the run store schema.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := paths.ResolveConfigDir(flags.configDir)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Sprintf("create config directory: %s", err))
	}

	dataDir := paths.ResolveDataDir(flags.dataDir, loadDataDirFromConfig(configDir))

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write config: %s", err))
	}

	// Initialize the run store schema via Open then Close.
	store := sqlite.NewStore()
	if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize run store: %s", err))
	}
	if err := store.Close(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("finalize run store: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Seqmine initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		MinSupport: defaultMinSupport,
		DataDir:    dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// loadDataDirFromConfig reads data_dir from an existing config.yaml.
// Returns empty string if the file does not exist or cannot be read.
func loadDataDirFromConfig(configDir string) string {
	path := filepath.Join(configDir, configFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.DataDir
}
