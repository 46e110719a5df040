// Package cmd wires the trustctl command tree. Each subcommand is a
// thin dispatcher: it resolves the trust-file path, builds a logger, and
// hands off to the operations in internal/trust.
package cmd

import (
	"errors"
	"os"

	"github.com/fleetmgr/trustctl/internal/trust"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errOperationFailed signals a non-zero operation status to main. The
// operations log their own diagnostics, so the error carries no detail.
var errOperationFailed = errors.New("operation failed")

var trustFile string

var rootCmd = &cobra.Command{
	Use:           "trustctl",
	Short:         "Modifies Fleet Agent Manager trust configuration",
	Long:          `trustctl maintains the Fleet Agent Manager trust store: certificates pinned per URL, and URLs exempted from trust establishment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&trustFile, "trust-file", "",
		"Path to file containing the agent manager's trust store")
}

func initConfig() {
	viper.SetEnvPrefix("TRUSTCTL")
	viper.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".trustctl")
		viper.SetConfigType("yaml")
		// A missing config file is fine; only explicit settings matter.
		_ = viper.ReadInConfig()
	}
}

// newLogger builds the timestamped stdout logger handed to every
// operation. The timestamp renders in the local timezone, matching the
// tool this replaces.
func newLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05 -0700",
	})
	return logger
}

// newManager is a var so command tests can inject managers with fake
// fetchers and prompts.
var newManager = func(logger *log.Logger, path string) *trust.Manager {
	return trust.NewManager(logger, path)
}
