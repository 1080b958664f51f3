package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/botw-saveconv/internal/messages"
)

const (
	appDirName     = "saveconv"
	configFileName = "config.toml"
)

var userConfigDir = os.UserConfigDir

// DefaultPath returns the config.toml location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveDirFmt, err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// ExpandPath expands a leading ~ in a user-supplied config path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	return expanded, nil
}
