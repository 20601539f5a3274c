package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Timestamp, R, G, B
2024-06-10 05:58:00, R: 120, G: 80, B: 10
2024-06-10 06:00:00, R: 121, G: 81, B: 20
2024-06-10 06:02:00, R: 122, G: 82, B: 30
`

func TestParseChannel(t *testing.T) {
	tests := []struct {
		cell    string
		want    int
		wantErr bool
	}{
		{cell: "B: 42", want: 42},
		{cell: "R: 0", want: 0},
		{cell: " G: 255 ", want: 255},
		{cell: "B42", wantErr: true},
		{cell: "B:42", wantErr: true},
		{cell: "B: forty", wantErr: true},
		{cell: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseChannel(tt.cell)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformedChannel, "cell %q", tt.cell)
			continue
		}
		require.NoError(t, err, "cell %q", tt.cell)
		assert.Equal(t, tt.want, got)
	}
}

func TestParse(t *testing.T) {
	series, err := Parse(strings.NewReader(sample), time.UTC)
	require.NoError(t, err)
	require.Equal(t, 3, series.Len())

	first := series.Readings[0]
	assert.Equal(t, time.Date(2024, 6, 10, 5, 58, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, 120, first.R)
	assert.Equal(t, 80, first.G)
	assert.Equal(t, 10, first.B)

	var bs []int
	for _, r := range series.Readings {
		bs = append(bs, r.B)
	}
	assert.Equal(t, []int{10, 20, 30}, bs, "row order must be preserved")
}

func TestParseUsesTimezoneForNaiveStamps(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	series, err := Parse(strings.NewReader(sample), warsaw)
	require.NoError(t, err)

	ts := series.Readings[0].Timestamp
	assert.Equal(t, 5, ts.Hour())
	assert.Equal(t, "CEST", ts.Format("MST"))
}

func TestParseSortsByTimestamp(t *testing.T) {
	unordered := `Timestamp, R, G, B
2024-06-10 06:02:00, R: 1, G: 1, B: 30
2024-06-10 05:58:00, R: 1, G: 1, B: 10
`
	series, err := Parse(strings.NewReader(unordered), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 10, series.Readings[0].B)
	assert.Equal(t, 30, series.Readings[1].B)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{
			name:  "missing label separator",
			input: "Timestamp, R, G, B\n2024-06-10 06:00:00, R: 1, G: 2, B3\n",
			err:   ErrMalformedChannel,
		},
		{
			name:  "bad timestamp",
			input: "Timestamp, R, G, B\nnot-a-date, R: 1, G: 2, B: 3\n",
			err:   ErrMalformedTimestamp,
		},
		{
			name:  "header only",
			input: "Timestamp, R, G, B\n",
			err:   ErrNoReadings,
		},
		{
			name:  "empty file",
			input: "",
			err:   ErrNoReadings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), time.UTC)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseWrongColumnCount(t *testing.T) {
	_, err := Parse(strings.NewReader("Timestamp, R, G\n2024-06-10 06:00:00, R: 1, G: 2\n"), time.UTC)
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("Timestamp, R, G, B\n2024-06-10 06:00:00, R: 1, G: 2\n"), time.UTC)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2024_06_10.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	series, err := Load(path, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 3, series.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), time.UTC)
	assert.Error(t, err)
}

func TestParseRejectsOutOfRangeChannel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"above 255", "Timestamp, R, G, B\n2024-06-10 06:00:00, R: 1, G: 2, B: 999\n"},
		{"negative", "Timestamp, R, G, B\n2024-06-10 06:00:00, R: 1, G: 2, B: -4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), time.UTC)
			require.ErrorIs(t, err, ErrInvalidReading)
			assert.Contains(t, err.Error(), "line 2")
			assert.Contains(t, err.Error(), "channel B")
		})
	}
}
