package cmd

import (
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear-trust",
	Short: "Clear the configured agent manager trust store.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(newLogger(), resolveTrustFile(trustFile))
		if rc := m.ClearTrust(); rc != 0 {
			return errOperationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
