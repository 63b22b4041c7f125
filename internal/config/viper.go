package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/stmtconv/internal/currencyutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STMTCONV_CSV_DELIMITER.
const EnvPrefix = "STMTCONV"

// DefaultNamespace is the CAMT.053 namespace written when none is configured.
const DefaultNamespace = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter       string `mapstructure:"delimiter" yaml:"delimiter"`
		DefaultCurrency string `mapstructure:"default_currency" yaml:"default_currency"`
		IDPrefix        string `mapstructure:"id_prefix" yaml:"id_prefix"`
	} `mapstructure:"csv" yaml:"csv"`

	CAMT struct {
		Indent    bool   `mapstructure:"indent" yaml:"indent"`
		Namespace string `mapstructure:"namespace" yaml:"namespace"`
	} `mapstructure:"camt" yaml:"camt"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`
}

// Load reads defaults, then configFile or, when it is empty, config.yaml from
// $HOME/.stmtconv, .stmtconv or the working directory, then environment
// overrides. An explicit file must exist; the searched locations are optional.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.stmtconv")
		v.AddConfigPath(".stmtconv")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The unprefixed LOG_LEVEL and LOG_FORMAT are honoured as well.
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind log format: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = v.ConfigFileUsed()

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.default_currency", "RUB")
	v.SetDefault("csv.id_prefix", "CSV")

	v.SetDefault("camt.indent", true)
	v.SetDefault("camt.namespace", DefaultNamespace)
}

// Validate checks every setting that a codec or the logger would reject.
func Validate(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if !validDelimiter(config.CSV.Delimiter) {
		return fmt.Errorf("CSV delimiter must be a single character, \\t or tab, got: %q", config.CSV.Delimiter)
	}
	if !currencyutils.IsValidCurrencyCode(config.CSV.DefaultCurrency) {
		return fmt.Errorf("csv.default_currency must be a three-letter code, got: %q", config.CSV.DefaultCurrency)
	}
	if strings.TrimSpace(config.CSV.IDPrefix) == "" {
		return fmt.Errorf("csv.id_prefix must not be empty")
	}
	if strings.TrimSpace(config.CAMT.Namespace) == "" {
		return fmt.Errorf("camt.namespace must not be empty")
	}
	return nil
}

// ConfigureLoggingFromConfig builds a logrus logger from the log section.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// validDelimiter accepts what common.ParseDelimiter turns into a separator.
func validDelimiter(s string) bool {
	switch strings.ToLower(s) {
	case `\t`, "tab":
		return true
	}
	return utf8.RuneCountInString(s) == 1
}
