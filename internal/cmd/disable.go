package cmd

import (
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable-trust URL",
	Short: "Allow the agent manager access to an URL without establishing trust.",
	Long: `Marks URL as reachable without trust establishment. Any certificate
previously pinned for the URL is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newManager(newLogger(), resolveTrustFile(trustFile))
		if rc := m.DisableTrust(args[0]); rc != 0 {
			return errOperationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)
}
