// Package batch handles batch conversion of a directory
package batch

import (
	"fmt"
	"maps"
	"slices"

	"fjacquet/stmtconv/cmd/root"
	"fjacquet/stmtconv/internal/batch"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/validation"

	"github.com/spf13/cobra"
)

// Flags are the batch command's options.
type Flags struct {
	InputDir            string
	OutputDir           string
	InputFormat         string
	OutputFormat        string
	Validate            bool
	AccountFromFilename bool
}

var flags = Flags{}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every statement of a directory",
	Long: `Convert every statement file directly inside an input directory into an
output directory. Each output keeps its input's base name with the extension of
the output format. A file that fails is reported and skipped; the command fails
when any file failed.

Without --input-format, only files with a known statement extension
(.sta, .940, .mt940, .swi, .xml, .csv, .txt) are converted.

Example:
  stmtconv batch -i exports/ -o converted/ --output-format camt053`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&flags.InputDir, "input", "i", "", "Input directory")
	Cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory")
	Cmd.Flags().StringVar(&flags.InputFormat, "input-format", "", "Input format for every file (default per file)")
	Cmd.Flags().StringVar(&flags.OutputFormat, "output-format", "", "Output format: mt940, camt053, csv")
	Cmd.Flags().BoolVarP(&flags.Validate, "validate", "v", false, "Check each input before converting it")
	Cmd.Flags().BoolVar(&flags.AccountFromFilename, "account-from-filename", false, "Take a missing account number from each filename")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
	_ = Cmd.MarkFlagRequired("output-format")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	if err := validation.IsValidDirectory(flags.InputDir); err != nil {
		return err
	}

	opts := batch.Options{
		Validate:            flags.Validate,
		AccountFromFilename: flags.AccountFromFilename,
	}
	to, err := factory.FormatFromName(flags.OutputFormat)
	if err != nil {
		return err
	}
	opts.OutputFormat = to
	if flags.InputFormat != "" {
		from, err := factory.FormatFromName(flags.InputFormat)
		if err != nil {
			return err
		}
		opts.InputFormat = from
	}

	conv := batch.NewConverter(c, c.GetRules(), c.GetLogger())
	result, err := conv.ConvertDirectory(flags.InputDir, flags.OutputDir, opts)
	for _, file := range slices.Sorted(maps.Keys(result.Failed)) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, result.Failed[file])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d file(s), %d failed.\n", len(result.Converted), len(result.Failed))
	return err
}
