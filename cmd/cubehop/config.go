package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubehop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in hopper.yaml. Save it to ~/.cubehop/configs/hopper.yaml
or ./configs/hopper.yaml to override the defaults, or pass it to
'cubehop play --config'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
