package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/watchlater/watchlater/config"
	"gitlab.com/watchlater/watchlater/helpers"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		baseDir := helpers.BaseConfigDir()
		cfg := config.Load(baseDir)

		fmt.Println("base directory: ", baseDir)
		fmt.Println("restart_last:   ", cfg.RestartLast)
		fmt.Println("restart_delay:  ", cfg.RestartDelay, "s")
		fmt.Println("update_interval:", cfg.UpdateInterval, "s")
		fmt.Println("rewind_time:    ", cfg.RewindMs, "ms")
		fmt.Println("min_runtime:    ", cfg.MinRuntimeMs, "ms")
		fmt.Println("max_runtime:    ", cfg.MaxRuntimeMs, "ms")
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
