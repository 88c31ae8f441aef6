package duration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/duration"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "seconds", input: "15s", want: 15 * time.Second},
		{name: "minutes", input: "20m", want: 20 * time.Minute},
		{name: "minutes and seconds", input: "15m30s", want: 15*time.Minute + 30*time.Second},
		{name: "hours", input: "2h", want: 2 * time.Hour},
		{name: "hours and minutes", input: "4h30m", want: 4*time.Hour + 30*time.Minute},
		{name: "day", input: "1d", want: 24 * time.Hour},
		{name: "all units", input: "1d12h15m30s", want: 130530 * time.Second},
		{name: "garbage between components", input: "1dno_such_duration15m30s", want: 24*time.Hour + 15*time.Minute + 30*time.Second},
		{name: "garbage only", input: "no_such_duration", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "iso prefix", input: "PT15M", want: 15 * time.Minute},
		{name: "lower case iso prefix", input: "pt2h", want: 2 * time.Hour},
		{name: "unknown unit ignored", input: "3w10s", want: 10 * time.Second},
		{name: "upper case units", input: "1H5S", want: time.Hour + 5*time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, duration.Parse(tt.input))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0s", duration.Format(0))
	assert.Equal(t, "1d12h15m30s", duration.Format(130530*time.Second))
	assert.Equal(t, "20m", duration.Format(20*time.Minute))
	assert.Equal(t, 130530*time.Second, duration.Parse(duration.Format(130530*time.Second)))
}
