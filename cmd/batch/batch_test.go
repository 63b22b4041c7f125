package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/stmtconv/cmd/root"
	"fjacquet/stmtconv/internal/config"
	"fjacquet/stmtconv/internal/container"
	"fjacquet/stmtconv/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineStatement = `:20:STMT-1
:25:CH9300762011623852957
:60F:C240301CHF500,00
:61:2403010301D120,00NTRF//RENT-03
:86:Rent March
:62F:C240301CHF380,00
-}
`

func setup(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.CSV.DefaultCurrency = "RUB"
	cfg.CSV.IDPrefix = "CSV"
	cfg.CAMT.Indent = true
	cfg.CAMT.Namespace = config.DefaultNamespace

	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		root.SetContainer(nil)
		flags = Flags{}
	})
}

func run(t *testing.T) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	Cmd.SetOut(&stdout)
	Cmd.SetErr(&stderr)
	err := batchFunc(Cmd, nil)
	return stdout.String(), stderr.String(), err
}

func TestCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	assert.Equal(t, "i", Cmd.Flags().Lookup("input").Shorthand)
	assert.Equal(t, "o", Cmd.Flags().Lookup("output").Shorthand)
	assert.NotNil(t, Cmd.Flags().Lookup("account-from-filename"))
}

func TestBatch_ConvertsDirectory(t *testing.T) {
	setup(t)
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(in, "march.sta"), []byte(lineStatement), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.sta"), []byte(":20:S\n:25:A\n:61:2401\n"), 0600))

	flags = Flags{InputDir: in, OutputDir: out, OutputFormat: "csv"}
	stdout, stderr, err := run(t)

	require.Error(t, err)
	assert.Equal(t, "Converted 1 file(s), 1 failed.\n", stdout)
	assert.Contains(t, stderr, filepath.Join(in, "broken.sta"))
	assert.FileExists(t, filepath.Join(out, "march.csv"))
	assert.NoFileExists(t, filepath.Join(out, "broken.csv"))
}

func TestBatch_AllSucceed(t *testing.T) {
	setup(t)
	in := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "march.dat"), []byte(lineStatement), 0600))

	flags = Flags{InputDir: in, OutputDir: out, InputFormat: "mt940", OutputFormat: "camt053"}
	stdout, stderr, err := run(t)

	require.NoError(t, err)
	assert.Equal(t, "Converted 1 file(s), 0 failed.\n", stdout)
	assert.Empty(t, stderr)
	assert.FileExists(t, filepath.Join(out, "march.xml"))
}

func TestBatch_InvalidArguments(t *testing.T) {
	setup(t)

	flags = Flags{InputDir: filepath.Join(t.TempDir(), "missing"), OutputDir: t.TempDir(), OutputFormat: "csv"}
	_, _, err := run(t)
	assert.Error(t, err)

	flags = Flags{InputDir: t.TempDir(), OutputDir: t.TempDir(), OutputFormat: "ods"}
	_, _, err = run(t)
	assert.Error(t, err)

	flags = Flags{InputDir: t.TempDir(), OutputDir: t.TempDir(), InputFormat: "qif", OutputFormat: "csv"}
	_, _, err = run(t)
	assert.Error(t, err)
}
