// Package compare handles the statement comparison command
package compare

import (
	"fmt"
	"io"

	"fjacquet/stmtconv/cmd/root"
	"fjacquet/stmtconv/internal/batch"
	"fjacquet/stmtconv/internal/compare"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/fileutils"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/spf13/cobra"
)

// Flags are the compare command's options.
type Flags struct {
	File1   string
	Format1 string
	File2   string
	Format2 string
}

var flags = Flags{}

// Cmd represents the compare command
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the transactions of two statements",
	Long: `Compare two statements, possibly in different formats, and print every
difference in transaction count, per-transaction date, amount, direction and
description, and opening or closing balance.

Example:
  stmtconv compare --file1 statement.sta --format1 mt940 --file2 statement.xml --format2 camt053`,
	RunE: compareFunc,
}

func init() {
	Cmd.Flags().StringVar(&flags.File1, "file1", "", "First statement file")
	Cmd.Flags().StringVar(&flags.Format1, "format1", "", "Format of the first file (default detected)")
	Cmd.Flags().StringVar(&flags.File2, "file2", "", "Second statement file")
	Cmd.Flags().StringVar(&flags.Format2, "format2", "", "Format of the second file (default detected)")
	_ = Cmd.MarkFlagRequired("file1")
	_ = Cmd.MarkFlagRequired("file2")
}

func compareFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	conv := batch.NewConverter(c, c.GetRules(), c.GetLogger())

	first, err := load(conv, flags.File1, flags.Format1, cmd.InOrStdin())
	if err != nil {
		return err
	}
	second, err := load(conv, flags.File2, flags.Format2, cmd.InOrStdin())
	if err != nil {
		return err
	}

	diffs := compare.Statements(first, second)
	c.GetLogger().Debug("Compared statements",
		logging.F(logging.FieldInputFile, flags.File1),
		logging.F(logging.FieldCount, len(diffs)))

	_, err = io.WriteString(cmd.OutOrStdout(), compare.Report(diffs, flags.File1, flags.File2))
	return err
}

func load(conv *batch.Converter, path, formatName string, stdin io.Reader) (*models.Statement, error) {
	var opts batch.Options
	if formatName != "" {
		f, err := factory.FormatFromName(formatName)
		if err != nil {
			return nil, err
		}
		opts.InputFormat = f
	}

	in, err := fileutils.OpenInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, &parsererror.IOError{Op: "read", Path: path, Err: err}
	}
	stmt, _, err := conv.Read(data, path, opts)
	return stmt, err
}
