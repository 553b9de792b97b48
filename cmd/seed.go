package cmd

import (
	"errors"
	"os"

	"restaurant_manager/database"

	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin account and a starter menu",
	Long: `Create the admin account and a starter menu. Existing rows are left alone.

Examples:
  restaurant seed --email admin@example.com --password s3cret
  ADMIN_PASSWORD=s3cret restaurant seed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminPassword == "" {
			adminPassword = os.Getenv("ADMIN_PASSWORD")
		}
		if adminPassword == "" {
			return errors.New("admin password is required (--password or ADMIN_PASSWORD)")
		}

		db, err := database.Connect(cfg.Database, log)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := database.Migrate(db); err != nil {
			return err
		}
		return database.SeedData(cmd.Context(), db, database.SeedOptions{
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
		}, log)
	},
}

func init() {
	defaultEmail := os.Getenv("ADMIN_EMAIL")
	if defaultEmail == "" {
		defaultEmail = "admin@restaurant.local"
	}
	seedCmd.Flags().StringVar(&adminEmail, "email", defaultEmail, "admin email (ADMIN_EMAIL)")
	seedCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (ADMIN_PASSWORD)")
}
