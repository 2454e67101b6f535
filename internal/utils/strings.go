package utils

import "encoding/json"

func MarshalStruct(input interface{}) (string, error) {
	bytes, err := json.Marshal(input)
	return string(bytes), err
}

// Cuts a string down to max runes, appending "..." when it had to cut.
//
// Discord rejects embed field values longer than 1024 characters.
func TruncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max <= 3 {
		return string(runes[:max])
	}

	return string(runes[:max-3]) + "..."
}

// Returns fallback when s is empty.
//
// Discord rejects embeds with empty field values.
func StringOrFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
