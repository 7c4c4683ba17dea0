package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/watchlater/watchlater/helpers"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("watchlater", helpers.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
