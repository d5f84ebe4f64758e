package domain

import "path/filepath"

// Directory and file names used by Camera Hub under the per-user app data root.
const (
	VendorDirName    = "Elgato"
	ProductDirName   = "CameraHub"
	TextsDirName     = "Texts"
	SettingsFileName = "AppSettings.json"
	DocumentFileExt  = ".json"
)

// Layout resolves Camera Hub paths relative to a base directory.
// An empty BaseDir yields root-relative paths rather than an error.
type Layout struct {
	BaseDir string
}

// NewLayout creates a layout rooted at baseDir.
func NewLayout(baseDir string) Layout {
	return Layout{BaseDir: baseDir}
}

// ProductDir returns <base>/Elgato/CameraHub.
func (l Layout) ProductDir() string {
	return filepath.Join(l.BaseDir, VendorDirName, ProductDirName)
}

// TextsDir returns <base>/Elgato/CameraHub/Texts.
func (l Layout) TextsDir() string {
	return filepath.Join(l.ProductDir(), TextsDirName)
}

// DocumentPath returns the file path for a document identifier.
func (l Layout) DocumentPath(id string) string {
	return filepath.Join(l.TextsDir(), CanonicalID(id)+DocumentFileExt)
}

// SettingsPath returns <base>/Elgato/CameraHub/AppSettings.json.
func (l Layout) SettingsPath() string {
	return filepath.Join(l.ProductDir(), SettingsFileName)
}
