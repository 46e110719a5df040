package cmd

import (
	"fmt"

	"github.com/fleetmgr/trustctl/internal/trust"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listEntry struct {
	URL         string `yaml:"url"`
	Trust       string `yaml:"trust"`
	Fingerprint string `yaml:"fingerprint,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list-trust",
	Short: "List the agent manager's trust store entries.",
	Long: `Lists every trust-store entry with the SHA-256 fingerprint of its
pinned certificate, or a disabled marker for URLs exempted from trust
establishment. Read-only; never modifies the store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		logger := newLogger()
		path := resolveTrustFile(trustFile)

		store, err := trust.Load(logger, path)
		if err != nil {
			logger.Warnf("Unable to read agent manager trust at %s: %v", path, err)
			return errOperationFailed
		}

		if store.Len() == 0 {
			logger.Info("Agent manager trust store is empty")
			return nil
		}

		entries := make([]listEntry, 0, store.Len())
		for _, url := range store.URLs() {
			e, _ := store.Get(url)
			le := listEntry{URL: url}
			if e.Kind == trust.KindDisabled {
				le.Trust = "disabled"
			} else {
				le.Trust = "pinned"
				fp, err := trust.Fingerprint(e.CertPEM)
				if err != nil {
					logger.Warnf("Couldn't fingerprint certificate pinned for %s: %v", url, err)
					return errOperationFailed
				}
				le.Fingerprint = "sha256:" + fp
			}
			entries = append(entries, le)
		}

		out := cmd.OutOrStdout()
		if output == "yaml" {
			return yaml.NewEncoder(out).Encode(entries)
		}
		for _, le := range entries {
			if le.Trust == "disabled" {
				fmt.Fprintf(out, "%s\ttrust disabled\n", le.URL)
			} else {
				fmt.Fprintf(out, "%s\t%s\n", le.URL, le.Fingerprint)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("output", "o", "", "Output format (yaml)")
}
