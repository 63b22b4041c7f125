// Package config handles the configuration inspection command
package config

import (
	"fmt"

	"fjacquet/stmtconv/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, the config file and environment
overrides (STMTCONV_*, LOG_LEVEL, LOG_FORMAT) have been applied.`,
	RunE: showFunc,
}

func init() {
	Cmd.AddCommand(showCmd)
}

func showFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	cfg := c.GetConfig()

	out := cmd.OutOrStdout()
	if cfg.File != "" {
		fmt.Fprintf(out, "# loaded from %s\n", cfg.File)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	return enc.Close()
}
