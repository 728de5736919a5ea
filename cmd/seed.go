package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unilease/unilease/config"
	"github.com/unilease/unilease/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Destructively reload the sample data",
	Long: `Seed wipes the users, cars and applications tables and loads the fixed
sample data set: one student, one staff member and six cars. Running it
twice yields the same state.`,
	Run: seed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create database directory: %v", err)
		}
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.Seed(cmd.Context()); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	log.Info("sample data loaded", "path", cfg.Database.Path)
	log.Info("login credentials", "student", "student@example.com / student123", "staff", "staff@example.com / staff123")
}
