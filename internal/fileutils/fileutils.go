// Package fileutils opens inputs and outputs, treating an empty path or "-"
// as a standard stream.
package fileutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/stmtconv/internal/models"
	"fjacquet/stmtconv/internal/parsererror"
)

// StdStream is the path that selects standard input or output.
const StdStream = "-"

// IsStdStream reports whether path selects a standard stream.
func IsStdStream(path string) bool {
	return path == "" || path == StdStream
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory and its parents if needed.
func EnsureDirectoryExists(dirPath string) error {
	if DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return &parsererror.IOError{Op: "mkdir", Path: dirPath, Err: err}
	}
	return nil
}

// OpenInput opens path for reading, or returns stdin when path selects a
// standard stream. The caller closes the result.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if IsStdStream(path) {
		return io.NopCloser(stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.IOError{Op: "open", Path: path, Err: err}
	}
	return file, nil
}

// CreateOutput creates or truncates path, creating parent directories, or
// returns stdout when path selects a standard stream. The caller closes the
// result; closing stdout is a no-op.
func CreateOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if IsStdStream(path) {
		return nopWriteCloser{stdout}, nil
	}
	if err := EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionOutputFile)
	if err != nil {
		return nil, &parsererror.IOError{Op: "create", Path: path, Err: err}
	}
	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ListFiles returns the regular files directly inside dirPath, sorted by
// name. When extensions are given (".xml", ".csv"), only matching files are
// returned; the comparison ignores case.
func ListFiles(dirPath string, extensions ...string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &parsererror.IOError{Op: "list", Path: dirPath, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if len(extensions) > 0 && !hasExtension(entry.Name(), extensions) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// OutputPath names the converted counterpart of inputPath inside outputDir:
// the base name with its extension replaced by extension (without a dot).
func OutputPath(inputPath, outputDir, extension string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, base+"."+extension)
}
