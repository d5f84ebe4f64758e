// Package file provides the TOML-backed tool configuration store.
//
// The config file lives at ~/.prompter/config.toml unless a directory is
// given. It is optional and edited by hand; the store only reads it.
package file
