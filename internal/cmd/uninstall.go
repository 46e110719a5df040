package cmd

import (
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall-cert URL",
	Short: "Unpin any known certificate for an URL from the agent manager's trust store.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(newLogger(), resolveTrustFile(trustFile))
		if rc := m.UninstallCert(args[0]); rc != 0 {
			return errOperationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
