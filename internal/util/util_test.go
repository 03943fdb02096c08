package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "bytes under kibibyte", bytes: 512, expected: "Maximum upload size is 512 B"},
		{name: "fractional kibibyte", bytes: 1536, expected: "Maximum upload size is 1.5 KiB"},
		{name: "default upload cap", bytes: 5 * 1024 * 1024, expected: "Maximum upload size is 5.0 MiB"},
		{name: "negative is clamped", bytes: -1, expected: "Maximum upload size is 0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, UploadLimit(tt.bytes))
		})
	}
}
