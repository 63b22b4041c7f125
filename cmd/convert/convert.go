// Package convert handles the single-statement conversion command
package convert

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/stmtconv/cmd/root"
	"fjacquet/stmtconv/internal/batch"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/fileutils"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/spf13/cobra"
)

// Flags are the convert command's options.
type Flags struct {
	Input               string
	InputFormat         string
	Output              string
	OutputFormat        string
	Validate            bool
	AccountFromFilename bool
}

var flags = Flags{}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one statement to another format",
	Long: `Convert one bank statement between MT940, CAMT.053 and CSV.

Input and output default to standard input and output. Without --input-format
the format is taken from the file extension, then from the content.

Example:
  stmtconv convert -i statement.sta --output-format camt053 -o statement.xml
  cat export.csv | stmtconv convert --input-format csv --output-format mt940`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Input file (default stdin)")
	Cmd.Flags().StringVar(&flags.InputFormat, "input-format", "", "Input format: mt940, camt053, csv (default detected)")
	Cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default stdout)")
	Cmd.Flags().StringVar(&flags.OutputFormat, "output-format", "", "Output format: mt940, camt053, csv")
	Cmd.Flags().BoolVarP(&flags.Validate, "validate", "v", false, "Check the input format and the parsed statement before converting")
	Cmd.Flags().BoolVar(&flags.AccountFromFilename, "account-from-filename", false, "Take a missing account number from the input filename")
	_ = Cmd.MarkFlagRequired("output-format")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}

	opts, err := Options(flags)
	if err != nil {
		return err
	}

	in, err := fileutils.OpenInput(flags.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	_ = in.Close()
	if err != nil {
		return &parsererror.IOError{Op: "read", Path: flags.Input, Err: err}
	}

	// The output is only opened once the conversion succeeded.
	var buf bytes.Buffer
	conv := batch.NewConverter(c, c.GetRules(), c.GetLogger())
	if err := conv.Convert(data, flags.Input, &buf, opts); err != nil {
		return err
	}

	out, err := fileutils.CreateOutput(flags.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		_ = out.Close()
		return &parsererror.IOError{Op: "write", Path: flags.Output, Err: err}
	}
	return out.Close()
}

// Options resolves the format names of f.
func Options(f Flags) (batch.Options, error) {
	opts := batch.Options{
		Validate:            f.Validate,
		AccountFromFilename: f.AccountFromFilename,
	}

	to, err := factory.FormatFromName(f.OutputFormat)
	if err != nil {
		return opts, err
	}
	opts.OutputFormat = to

	if f.InputFormat != "" {
		from, err := factory.FormatFromName(f.InputFormat)
		if err != nil {
			return opts, err
		}
		opts.InputFormat = from
	}
	return opts, nil
}
