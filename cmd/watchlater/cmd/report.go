package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"gitlab.com/watchlater/watchlater/report"
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "List all stored resume records",
	Long:  "List all stored resume records with creation time, saved position and whether the media file still exists.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		rows, err := report.Scan(dir)
		if err != nil {
			return errors.Wrap(err, "could not scan for resume records")
		}
		for _, row := range rows {
			fmt.Println(row.Format())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
