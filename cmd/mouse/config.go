package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/find-the-mouse/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.mouse/configs/mouse.yaml or pass it with --config to change
the rules or the look of the cards.

Examples:
  mouse config > ~/.mouse/configs/mouse.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
