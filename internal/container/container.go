// Package container wires the application's dependencies: configuration,
// logger, one codec per format and the conversion rules.
package container

import (
	"fmt"
	"time"

	"fjacquet/stmtconv/internal/camtparser"
	"fjacquet/stmtconv/internal/common"
	"fjacquet/stmtconv/internal/config"
	"fjacquet/stmtconv/internal/conversion"
	"fjacquet/stmtconv/internal/csvparser"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
)

// Container is immutable after creation; dependencies are reached through
// getters.
type Container struct {
	logger logging.Logger
	config *config.Config
	codecs map[factory.Format]parser.Codec
	rules  *conversion.Rules
}

// NewContainer creates the logger from cfg and wires everything else to it.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	opts := CodecOptions(cfg)
	codecs := make(map[factory.Format]parser.Codec, len(factory.Formats))
	for _, f := range factory.Formats {
		codec, err := factory.GetCodec(f, logger, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s codec: %w", f, err)
		}
		codecs[f] = codec
	}

	logger.Debug("Container initialized",
		logging.F("codecs_count", len(codecs)),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	return &Container{
		logger: logger,
		config: cfg,
		codecs: codecs,
		rules:  conversion.NewRules(logger, time.Now),
	}, nil
}

// CodecOptions maps the configuration onto per-codec options.
func CodecOptions(cfg *config.Config) factory.Options {
	return factory.Options{
		Structured: camtparser.Options{
			Indent:    cfg.CAMT.Indent,
			Namespace: cfg.CAMT.Namespace,
			Now:       time.Now,
		},
		Tabular: csvparser.Options{
			Delimiter:       common.ParseDelimiter(cfg.CSV.Delimiter),
			DefaultCurrency: cfg.CSV.DefaultCurrency,
			IDPrefix:        cfg.CSV.IDPrefix,
			Now:             time.Now,
		},
	}
}

// GetCodec returns the codec for f.
func (c *Container) GetCodec(f factory.Format) (parser.Codec, error) {
	codec, ok := c.codecs[f]
	if !ok {
		return nil, &parsererror.UnknownFormatError{Name: f.String()}
	}
	return codec, nil
}

func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRules returns the conversion rules applied between formats.
func (c *Container) GetRules() *conversion.Rules {
	return c.rules
}
