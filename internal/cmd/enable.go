package cmd

import (
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable-trust URL",
	Short: "Remove permission to access an URL without establishing trust.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(newLogger(), resolveTrustFile(trustFile))
		if rc := m.EnableTrust(args[0]); rc != 0 {
			return errOperationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
}
