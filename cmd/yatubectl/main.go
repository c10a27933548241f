package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"yatube/cache"
	"yatube/storage/db"
	"yatube/utils"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Connect()
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			if err := db.Migrate(database); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			fmt.Println("schema is up to date")
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-clear",
		Short: "Drop the cached home page immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			redisOptions := redis.Options{
				Addr: fmt.Sprintf(
					"%s:%s",
					utils.Env("REDIS_HOST", "localhost"),
					utils.Env("REDIS_PORT", "6379"),
				),
			}
			pages := cache.NewPages(&redisOptions, time.Duration(0))
			if err := pages.ClearHome(); err != nil {
				return fmt.Errorf("clearing home page cache: %w", err)
			}
			fmt.Println("home page cache cleared")
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "yatubectl",
		Short: "Administrative tooling for the Yatube backend",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			godotenv.Load()
		},
	}
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newCacheClearCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
