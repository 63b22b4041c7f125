package parser

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/stmtconv/internal/logging"
	"fjacquet/stmtconv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestNewBaseParser(t *testing.T) {
	mock := logging.NewMockLogger()
	base := NewBaseParser("MT940", mock)

	assert.Equal(t, "MT940", base.Name())
	base.LogParsed("STMT-1", 2)

	require.True(t, mock.HasEntry("INFO", "Parsed statement"))
	entry := mock.EntriesByLevel("INFO")[0]
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldFormat, Value: "MT940"})
	assert.Contains(t, entry.Fields, logging.Field{Key: logging.FieldCount, Value: 2})
}

func TestNewBaseParser_NilLogger(t *testing.T) {
	base := NewBaseParser("CSV", nil)
	assert.NotNil(t, base.GetLogger())
}

func TestBaseParser_SetLogger(t *testing.T) {
	base := NewBaseParser("CAMT", logging.NewMockLogger())
	replacement := logging.NewMockLogger()

	base.SetLogger(replacement)
	base.SetLogger(nil)
	base.LogWritten("S", 0)

	assert.True(t, replacement.HasEntry("INFO", "Wrote statement"))
}

func TestBaseParser_ReadAll(t *testing.T) {
	base := NewBaseParser("CSV", logging.NewMockLogger())

	data, err := base.ReadAll(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = base.ReadAll(failingReader{})
	var ioErr *parsererror.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
}
