package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalStruct(t *testing.T) {
	out, err := MarshalStruct(struct {
		Name string `json:"name"`
	}{Name: "alpha"})

	assert.NoError(t, err)
	assert.Equal(t, `{"name":"alpha"}`, out)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exact", TruncateString("exact", 5))
	assert.Equal(t, "lo...", TruncateString("longer text", 5))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestStringOrFallback(t *testing.T) {
	assert.Equal(t, "value", StringOrFallback("value", "-"))
	assert.Equal(t, "-", StringOrFallback("", "-"))
}
