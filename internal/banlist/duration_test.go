package banlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationToMs(t *testing.T) {
	tests := []struct {
		token string
		want  int64
	}{
		{"1m", 60000},
		{"45m", 45 * 60000},
		{"1h", 3600000},
		{"3h", 3 * 3600000},
		{"1d", 86400000},
		{"14d", 14 * 86400000},
		{"1mo", 2592000000},
		{"2mo", 2 * 2592000000},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := DurationToMs(tt.token)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// "2mo" must parse as two months, not two minutes with a trailing "o".
func TestDurationToMsMonthBeforeMinute(t *testing.T) {
	got, ok := DurationToMs("2mo")
	assert.True(t, ok)
	assert.Equal(t, int64(2*2592000000), got)
}

func TestDurationToMsMalformed(t *testing.T) {
	tokens := []string{
		"",
		"abc",
		"14x",
		"14",
		"mo",
		"d",
		"1.5d",
		"-1d",
		"1w",
		"14d ",
		" 14d",
		"14dd",
		"14mo2",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			got, ok := DurationToMs(token)
			assert.False(t, ok)
			assert.Equal(t, int64(0), got)
		})
	}
}
