package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"file uri", "file:///home/user/script.txt", "/home/user/script.txt"},
		{"bare absolute path", "/home/user/script.txt", "/home/user/script.txt"},
		{"relative path", "script.txt", "script.txt"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePath(tt.input))
		})
	}
}
