// Package cli implements the seqmine command-line interface.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "seqmine" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seqmine",
		Short: "A sequential pattern miner for transaction datasets",
		Long: "Seqmine discovers frequent sequential patterns in transaction datasets\n" +
			"using level-wise candidate generation over a contiguous-match support engine.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .seqmine)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory for the run store (default: .seqmine-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable progress logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newMineCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newRunsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
