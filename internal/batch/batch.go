// Package batch converts statement files one at a time or a whole directory at
// once.
package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"fjacquet/stmtconv/internal/common"
	"fjacquet/stmtconv/internal/conversion"
	"fjacquet/stmtconv/internal/factory"
	"fjacquet/stmtconv/internal/fileutils"
	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parser"
	"fjacquet/stmtconv/internal/parsererror"
	"fjacquet/stmtconv/internal/validation"
)

// CodecProvider hands out the codec of a format. The container implements it.
type CodecProvider interface {
	GetCodec(f factory.Format) (parser.Codec, error)
}

// Options controls a conversion. A zero InputFormat means the format is taken
// from the file extension, then from the content.
type Options struct {
	InputFormat         factory.Format
	OutputFormat        factory.Format
	Validate            bool
	AccountFromFilename bool
}

// Result summarizes a directory conversion.
type Result struct {
	Converted []string
	Failed    map[string]error
}

// Converter runs the parse, convert, serialize pipeline.
type Converter struct {
	codecs CodecProvider
	rules  *conversion.Rules
	logger logging.Logger
}

// NewConverter creates a Converter.
func NewConverter(codecs CodecProvider, rules *conversion.Rules, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Converter{codecs: codecs, rules: rules, logger: logger}
}

// ResolveInputFormat picks the input format for a document named source.
func (c *Converter) ResolveInputFormat(data []byte, source string, declared factory.Format) factory.Format {
	if declared.IsValid() {
		return declared
	}
	if !fileutils.IsStdStream(source) {
		if f, err := factory.FormatFromPath(source); err == nil {
			return f
		}
	}
	f := factory.DetectFormat(data)
	c.logger.Debug("Detected input format from content",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldFormat, f.String()))
	return f
}

// Read parses data, named source for logs and errors, into a statement.
func (c *Converter) Read(data []byte, source string, opts Options) (*models.Statement, factory.Format, error) {
	from := c.ResolveInputFormat(data, source, opts.InputFormat)
	codec, err := c.codecs.GetCodec(from)
	if err != nil {
		return nil, from, err
	}

	if opts.Validate {
		if v, ok := codec.(parser.FormatValidator); ok {
			if err := validation.CheckFormat(v, data, source, from.String()); err != nil {
				return nil, from, err
			}
		}
	}

	stmt, err := codec.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, from, err
	}

	if opts.AccountFromFilename && !fileutils.IsStdStream(source) {
		id := common.ResolveAccount(stmt, source)
		if id.Source == "filename" {
			c.logger.Info("Using account from filename",
				logging.F(logging.FieldFile, source),
				logging.F(logging.FieldAccount, id.ID))
			stmt.Account = id.ID
		}
	}

	if opts.Validate {
		if err := validation.ValidateStatement(stmt, source); err != nil {
			return nil, from, err
		}
	}
	return stmt, from, nil
}

// Convert reads data in its input format and writes it to w in the output
// format, applying the conversion rules between the two.
func (c *Converter) Convert(data []byte, source string, w io.Writer, opts Options) error {
	if !opts.OutputFormat.IsValid() {
		return &parsererror.UnknownFormatError{Name: opts.OutputFormat.String()}
	}
	stmt, from, err := c.Read(data, source, opts)
	if err != nil {
		return err
	}

	out, err := c.codecs.GetCodec(opts.OutputFormat)
	if err != nil {
		return err
	}
	converted := c.rules.Apply(stmt, from, opts.OutputFormat)
	if err := out.Write(w, converted); err != nil {
		return err
	}

	c.logger.Info("Converted statement",
		logging.F(logging.FieldFile, source),
		logging.F(logging.FieldSourceFormat, from.String()),
		logging.F(logging.FieldTargetFormat, opts.OutputFormat.String()),
		logging.F(logging.FieldCount, len(converted.Transactions)))
	return nil
}

// ConvertFile converts one file into outputPath.
func (c *Converter) ConvertFile(inputPath, outputPath string, opts Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &parsererror.IOError{Op: "read", Path: inputPath, Err: err}
	}

	var buf bytes.Buffer
	if err := c.Convert(data, inputPath, &buf, opts); err != nil {
		return err
	}

	out, err := fileutils.CreateOutput(outputPath, nil)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		_ = out.Close()
		return &parsererror.IOError{Op: "write", Path: outputPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return &parsererror.IOError{Op: "close", Path: outputPath, Err: err}
	}
	return nil
}

// ConvertDirectory converts every regular file directly inside inputDir into
// outputDir, naming each output after its input with the output format's
// extension. A failing file is logged and skipped; the returned error is
// non-nil when any file failed.
func (c *Converter) ConvertDirectory(inputDir, outputDir string, opts Options) (Result, error) {
	result := Result{Failed: map[string]error{}}

	if !opts.OutputFormat.IsValid() {
		return result, &parsererror.UnknownFormatError{Name: opts.OutputFormat.String()}
	}
	files, err := fileutils.ListFiles(inputDir)
	if err != nil {
		return result, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return result, err
	}

	var firstErr error
	for _, file := range files {
		if !opts.InputFormat.IsValid() {
			if _, err := factory.FormatFromPath(file); err != nil {
				c.logger.Debug("Skipping file with unrecognized extension", logging.F(logging.FieldFile, file))
				continue
			}
		}

		target := fileutils.OutputPath(file, outputDir, opts.OutputFormat.Extension())
		if err := c.ConvertFile(file, target, opts); err != nil {
			c.logger.WithError(err).Error("Failed to convert file", logging.F(logging.FieldFile, file))
			result.Failed[file] = err
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		result.Converted = append(result.Converted, target)
	}

	c.logger.Info("Batch conversion finished",
		logging.F(logging.FieldInputFile, inputDir),
		logging.F(logging.FieldOutputFile, outputDir),
		logging.F(logging.FieldCount, len(result.Converted)),
		logging.F(logging.FieldFailed, len(result.Failed)))

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%d of %d files failed to convert: %w",
			len(result.Failed), len(result.Failed)+len(result.Converted), firstErr)
	}
	return result, nil
}
