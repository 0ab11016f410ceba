package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the directory holding aboutctl's configuration files: an
// "aboutctl" folder under the platform config base reported by
// os.UserConfigDir. When no config base can be determined the home
// directory serves as the base instead.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "aboutctl"), nil
}
