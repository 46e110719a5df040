package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version can be set via LDFLAGS during build
var Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trustctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trustctl version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
