// Package paths locates the directory that holds invobs's config.yaml.
//
// The directory comes from, in order: the --config-dir flag, INVOBS_CONFIG_DIR,
// and the per-user config root of the platform.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigDir names the environment variable that points at the config directory.
const EnvConfigDir = "INVOBS_CONFIG_DIR"

const appDirName = "invobs"

// lookup is swapped out in tests.
var lookup = struct {
	home       func() (string, error)
	userConfig func() (string, error)
}{
	home:       os.UserHomeDir,
	userConfig: os.UserConfigDir,
}

// DefaultConfigDir is the invobs directory under the user's config root:
// $XDG_CONFIG_HOME or ~/.config on Linux, os.UserConfigDir elsewhere.
func DefaultConfigDir() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", fmt.Errorf("locate config root: %w", err)
	}
	return filepath.Join(root, appDirName), nil
}

func configRoot() (string, error) {
	if runtime.GOOS != "linux" {
		return lookup.userConfig()
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := lookup.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

// ResolveConfigDir picks the config directory for a run. An explicit flag or
// env value is returned as an absolute path.
func ResolveConfigDir(flag string) (string, error) {
	for _, dir := range []string{flag, os.Getenv(EnvConfigDir)} {
		if dir != "" {
			return filepath.Abs(dir)
		}
	}
	return DefaultConfigDir()
}
