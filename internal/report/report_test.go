package report

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rewired-gh/sunwindow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	sun := models.SunTimes{
		Sunrise: time.Date(2024, 6, 10, 4, 17, 42, 0, time.UTC),
		Sunset:  time.Date(2024, 6, 10, 21, 3, 5, 0, time.UTC),
	}
	avgs := models.WindowAverages{Sunrise: 20, Daytime: 101.33333333333333, Sunset: math.NaN()}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sun, avgs))

	want := "Sunrise: 04:17\n" +
		"Sunset: 21:03\n" +
		"Mean B (sunrise): 20.0\n" +
		"Mean B (daytime): 101.33333333333333\n" +
		"Mean B (sunset): NaN\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, models.SunTimes{}, models.WindowAverages{})
	assert.Error(t, err)
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20.0"},
		{0, "0.0"},
		{255, "255.0"},
		{25.5, "25.5"},
		{101.33333333333333, "101.33333333333333"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAverage(tt.in))
	}
}
