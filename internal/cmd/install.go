package cmd

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install-cert URL",
	Short: "Pin an URL's leaf certificate in the agent manager trust store.",
	Long: `Fetches the TLS leaf certificate behind URL — skipping all chain and
hostname validation — and pins it in the trust store as the sole trusted
credential for that URL. The fetched certificate is shown for
confirmation unless -y is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		autoAccept, _ := cmd.Flags().GetBool("yes")

		m := newManager(newLogger(), resolveTrustFile(trustFile))
		if rc := m.InstallCert(args[0], autoAccept); rc != 0 {
			return errOperationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolP("yes", "y", false,
		"accept any certificate behind the URL without confirmation")
}
