package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"restaurant_manager/config"
	"restaurant_manager/utils"

	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Restaurant back office API",
	Long: `Restaurant back office API: menu, events and RSVPs, promotions, table
reservations and orders.

Settings come from defaults, the optional --config YAML file, a .env file and the
process environment, in that order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log = utils.NewLogger(cfg.LogLevel)
		return nil
	},
}

// Execute runs the root command; serve is used when no subcommand is given.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}
