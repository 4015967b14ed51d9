package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host  string
	board string
)

var rootCmd = &cobra.Command{
	Use:   "scoreboard-cli",
	Short: "A CLI to interact with the scoreboard server",
	Long: `A command-line interface for reading boards and applying
commands against a running scoreboard server.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&board, "board", "default", "The board to operate on")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
