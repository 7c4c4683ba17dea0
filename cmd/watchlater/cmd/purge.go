package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/watchlater/watchlater/record"
	"gitlab.com/watchlater/watchlater/report"
)

var purgeCmd = &cobra.Command{
	Use:   "purge [path]",
	Short: "Delete resume records whose media file no longer exists",
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

		store := record.NewStore(dir)
		deleted := 0
		for _, row := range rows {
			if row.Found {
				continue
			}
			if err := store.Delete(row.Hash); err != nil {
				log.WithFields(log.Fields{"error": err, "hash": row.Hash}).Warnln("Failed to delete stale resume record.")
				continue
			}
			log.WithFields(log.Fields{"hash": row.Hash, "path": row.Path}).Infoln("Deleted stale resume record.")
			deleted++
		}

		fmt.Printf("Deleted %d stale record(s).\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}
