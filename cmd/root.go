package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sixfootdad/coldvault/internal/config"
	"github.com/sixfootdad/coldvault/internal/logging"
	"github.com/sixfootdad/coldvault/internal/session"
)

var (
	flagConfigPath string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "coldvault",
	Short: "Command-line client for cold archival storage and its notification topics",
	Long: "Coldvault manages vaults, archives, and retrieval jobs in Amazon Glacier,\n" +
		"and the SNS topics and subscriptions that signal job completion.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newLogger() logging.Logger {
	return logging.NewText(os.Stderr, flagVerbose)
}

// newSession loads the config file and establishes the two service handles.
// Commands call this once at the top of their RunE.
func newSession(cmd *cobra.Command) (*session.Session, error) {
	v, err := config.Load(flagConfigPath, true)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Unmarshal(v)
	if err != nil {
		return nil, err
	}
	return session.New(cmd.Context(), cfg, newLogger())
}
