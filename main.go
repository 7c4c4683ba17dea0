package main

import (
	"os"

	"gitlab.com/watchlater/watchlater/cmd/watchlater/cmd"
)

func main() {
	cmd.Execute()

	os.Exit(0)
}
