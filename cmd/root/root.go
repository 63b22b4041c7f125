// Package root contains the root command for the application
package root

import (
	"fjacquet/stmtconv/internal/config"
	"fjacquet/stmtconv/internal/container"
	"fjacquet/stmtconv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags are the flags shared by every command.
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "stmtconv",
		Short: "Convert bank statements between MT940, CAMT.053 and CSV.",
		Long: `stmtconv reads and writes bank account statements in three formats:
SWIFT MT940, ISO 20022 CAMT.053 XML and a bilingual tabular CSV export.
It converts between them and compares two statements transaction by transaction.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

// Init registers the persistent flags. Call it once before Execute.
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches $HOME/.stmtconv, .stmtconv and .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(SharedFlags.ConfigFile)
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	appContainer = c
	c.GetLogger().Debug("Configuration loaded", logging.F(logging.FieldFile, cfg.File))
	return nil
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the container; tests use it to skip configuration
// loading.
func SetContainer(c *container.Container) {
	appContainer = c
}

// GetLogger returns the configured logger, or an info-level text logger before
// configuration is loaded.
func GetLogger() logging.Logger {
	if appContainer == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return appContainer.GetLogger()
}
