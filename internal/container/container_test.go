package container

import (
	"errors"
	"testing"

	"fjacquet/stmtconv/internal/config"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ";"
	cfg.CSV.DefaultCurrency = "EUR"
	cfg.CSV.IDPrefix = "EXP"
	cfg.CAMT.Indent = false
	cfg.CAMT.Namespace = config.DefaultNamespace
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.Config
		errorMsg string
	}{
		{name: "nil config", config: nil, errorMsg: "configuration cannot be nil"},
		{name: "valid config", config: testConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetRules())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(), nil)
	assert.ErrorContains(t, err, "logger cannot be nil")
}

func TestContainer_GetCodec(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(), logging.NewMockLogger())
	require.NoError(t, err)

	for _, f := range factory.Formats {
		codec, err := c.GetCodec(f)
		require.NoError(t, err)
		assert.NotNil(t, codec)
	}

	_, err = c.GetCodec(factory.Format(0))
	assert.True(t, errors.Is(err, parsererror.ErrUnknownFormat))
}

func TestCodecOptions(t *testing.T) {
	opts := CodecOptions(testConfig())

	assert.Equal(t, ';', opts.Tabular.Delimiter)
	assert.Equal(t, "EUR", opts.Tabular.DefaultCurrency)
	assert.Equal(t, "EXP", opts.Tabular.IDPrefix)
	assert.NotNil(t, opts.Tabular.Now)
	assert.False(t, opts.Structured.Indent)
	assert.Equal(t, config.DefaultNamespace, opts.Structured.Namespace)
}

func TestCodecOptions_TabDelimiter(t *testing.T) {
	cfg := testConfig()
	cfg.CSV.Delimiter = "tab"
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, '\t', CodecOptions(cfg).Tabular.Delimiter)
}
