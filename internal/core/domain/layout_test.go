package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout_Paths(t *testing.T) {
	base := filepath.Join("home", "user", "AppData", "Roaming")
	layout := NewLayout(base)

	assert.Equal(t, filepath.Join(base, "Elgato", "CameraHub"), layout.ProductDir())
	assert.Equal(t, filepath.Join(base, "Elgato", "CameraHub", "Texts"), layout.TextsDir())
	assert.Equal(t, filepath.Join(base, "Elgato", "CameraHub", "AppSettings.json"), layout.SettingsPath())
	assert.Equal(t,
		filepath.Join(base, "Elgato", "CameraHub", "Texts", "ABC-123.json"),
		layout.DocumentPath("abc-123"),
	)
}

// TestLayout_EmptyBase tests that an empty base gives root-relative paths
func TestLayout_EmptyBase(t *testing.T) {
	layout := NewLayout("")

	assert.Equal(t, filepath.Join("Elgato", "CameraHub", "Texts"), layout.TextsDir())
	assert.Equal(t, filepath.Join("Elgato", "CameraHub", "AppSettings.json"), layout.SettingsPath())
}
