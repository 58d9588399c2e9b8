package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the client's directory under the user config dir.
	AppDirName = "lifedash"

	// ConfigFileName is the name of the client configuration file.
	ConfigFileName = "lifedash.yaml"

	// TokenFileName is the name of the session token file.
	TokenFileName = "token"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the permission for the session token file (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigDir returns the client's directory under the user config dir.
// It falls back to a relative directory when the config dir cannot be resolved.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// DefaultConfigPath returns the default path of the configuration file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName)
}

// DefaultTokenPath returns the default path of the session token file.
func DefaultTokenPath() string {
	return filepath.Join(DefaultConfigDir(), TokenFileName)
}
