package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/watchlater/watchlater/helpers"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "watchlater",
	Short: "Remember and restore media playback positions",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		helpers.InitLoggers(level)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
