package dateutils

import (
	"errors"
	"testing"
	"time"

	"fjacquet/stmtconv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYYMMDD(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "490101", want: Date(2049, time.January, 1)},
		{input: "500101", want: Date(1950, time.January, 1)},
		{input: "240229", want: Date(2024, time.February, 29)},
		{input: "991231", want: Date(1999, time.December, 31)},
		{input: "000315", want: Date(2000, time.March, 15)},
		{input: "230229", wantErr: true},
		{input: "241301", wantErr: true},
		{input: "24010", wantErr: true},
		{input: "24O101", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYYMMDD(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, parsererror.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMMDD(t *testing.T) {
	got, err := ParseMMDD("0415", 2024)
	require.NoError(t, err)
	assert.Equal(t, Date(2024, time.April, 15), got)

	_, err = ParseMMDD("0431", 2024)
	assert.Error(t, err)
	_, err = ParseMMDD("04", 2024)
	assert.Error(t, err)
}

func TestFormatLineDates(t *testing.T) {
	d := Date(2009, time.July, 5)
	assert.Equal(t, "090705", FormatYYMMDD(d))
	assert.Equal(t, "0705", FormatMMDD(d))
	assert.Equal(t, "991231", FormatYYMMDD(Date(1999, time.December, 31)))
}

func TestParseISODateTime(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-03-01T15:04:05", want: Date(2024, time.March, 1)},
		{input: "2024-03-01T23:30:00+02:00", want: Date(2024, time.March, 1)},
		{input: "2024-03-01T08:00:00.123Z", want: Date(2024, time.March, 1)},
		{input: "2024-03-01", wantErr: true},
		{input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISODateTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate(" 2023-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, Date(2023, time.December, 31), got)

	_, err = ParseISODate("31.12.2023")
	assert.True(t, errors.Is(err, parsererror.ErrInvalidDate))
}

func TestParseFirstMatch_TabularOrder(t *testing.T) {
	tests := []struct {
		input      string
		want       time.Time
		wantLayout string
	}{
		{input: "05.03.2024", want: Date(2024, time.March, 5), wantLayout: "2.1.2006"},
		{input: "5.3.2024", want: Date(2024, time.March, 5), wantLayout: "2.1.2006"},
		{input: "2024-03-05", want: Date(2024, time.March, 5), wantLayout: "2006-1-2"},
		{input: "05/03/2024", want: Date(2024, time.March, 5), wantLayout: "2/1/2006"},
		{input: "03/25/2024", want: Date(2024, time.March, 25), wantLayout: "1/2/2006"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, layout, err := ParseFirstMatch(tt.input, TabularLayouts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLayout, layout)
		})
	}

	_, _, err := ParseFirstMatch("not a date", TabularLayouts)
	assert.Error(t, err)
}

func TestFormatISODateTime(t *testing.T) {
	assert.Equal(t, "2024-01-31T00:00:00", FormatISODateTime(Date(2024, time.January, 31)))
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, 6, 30, 23, 59, 0, 0, loc)
	assert.Equal(t, Date(2024, time.June, 30), Truncate(in))
}
