package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sile16/karaoke/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented sample config",
	Long:  `Init writes a sample TOML config with every option set to its default.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "karaoke.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteSample(path); err != nil {
			return err
		}
		slog.Info("config written", "path", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the sample config to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.Sample())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
