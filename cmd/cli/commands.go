package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var dryRun bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Apply the command without sending notifications")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(plusCmd)
	rootCmd.AddCommand(minusCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the known boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/boards")
	},
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the roster and leaderboard of a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(boardPath(""))
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player with a score of zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest(boardPath("/players"), map[string]any{"name": args[0]})
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <index> <name>",
	Short: "Rename the player at a roster position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		return performPostRequest(boardPath(fmt.Sprintf("/players/%d/rename", index)), map[string]any{"name": args[1]})
	},
}

var plusCmd = &cobra.Command{
	Use:   "plus <index>",
	Short: "Give a player one point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjust(args[0], 1)
	},
}

var minusCmd = &cobra.Command{
	Use:   "minus <index>",
	Short: "Take one point from a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjust(args[0], -1)
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <index> <delta>",
	Short: "Adjust a player's score by an arbitrary delta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q: %w", args[1], err)
		}
		return adjust(args[0], delta)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set every score on the board to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest(boardPath("/reset"), nil)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last change",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest(boardPath("/undo"), nil)
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Reapply the last undone change",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest(boardPath("/redo"), nil)
	},
}

func adjust(rawIndex string, delta int) error {
	index, err := parseIndex(rawIndex)
	if err != nil {
		return err
	}
	return performPostRequest(boardPath(fmt.Sprintf("/players/%d/score", index)), map[string]any{"delta": delta})
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid player index %q: %w", raw, err)
	}
	return index, nil
}

func boardPath(suffix string) string {
	return "/boards/" + url.PathEscape(board) + suffix
}

func performGetRequest(endpoint string) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	resp, err := http.Get(target)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, payload map[string]any) error {
	target := host + endpoint
	if dryRun {
		target += "?dry_run=true"
	}
	fmt.Printf("Making request to %s\n", target)

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := http.Post(target, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
