package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/scoreboard/internal/database"
	"github.com/mauv0809/scoreboard/internal/persistence"
	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/spf13/cobra"
)

// demoRoster is the board a fresh install starts from.
var demoRoster = []roster.Player{
	{Name: "Waqas", Score: 3},
	{Name: "Ross", Score: 1},
	{Name: "Ranin", Score: 1},
	{Name: "Asia", Score: 0},
}

var (
	board    string
	fromFile string
	force    bool
)

var rootCmd = &cobra.Command{
	Use:   "scoreboard-seeder",
	Short: "Seed a board with the demo roster or a legacy JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&board, "board", "default", "The board to write")
	rootCmd.Flags().StringVar(&fromFile, "from", "", "Import a legacy JSON array of {name, score} instead of the demo roster")
	rootCmd.Flags().BoolVar(&force, "force", false, "Overwrite the board if it already exists")
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	value, ok := os.LookupEnv("DB_NAME")
	if !ok {
		log.Fatalf("Error: Required environment variable %s is not set.", "DB_NAME")
	}
	config["DB_NAME"] = value
	for _, key := range []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		config[key] = os.Getenv(key)
	}
	return config
}

func seed(ctx context.Context) error {
	log.Info("Starting board seeder...", "board", board)
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer teardown()

	adapter := persistence.Bind(persistence.NewSQLStore(db), board)
	if _, exists, err := adapter.Load(ctx); err != nil {
		return err
	} else if exists && !force {
		return fmt.Errorf("board %q already exists, use --force to overwrite it", board)
	}

	snapshot := roster.NewSnapshot(demoRoster)
	if fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", fromFile, err)
		}
		if snapshot, err = persistence.Decode(data); err != nil {
			return fmt.Errorf("failed to import %s: %w", fromFile, err)
		}
	}

	blob, err := persistence.Encode(snapshot)
	if err != nil {
		return err
	}
	if err := adapter.Save(ctx, blob); err != nil {
		return err
	}

	log.Info("Board seeded.", "board", board, "players", snapshot.Len())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("Seeding failed", "error", err)
	}
}
