package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// LocalName returns the path of the local override for a config file,
// "selectors.json5" becomes "selectors.local.json5".
func LocalName(name string) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s.local%s", strings.TrimSuffix(name, ext), ext)
}

func readJSON5[T any](path string) (T, bool, error) {
	var out T
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}
	if len(contents) == 0 {
		return out, false, nil
	}
	err = json5.Unmarshal(contents, &out)
	if err != nil {
		return out, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, true, nil
}

// ReadOnto reads the json5 file at `name` and then `<name>.local.<ext>`, every
// non-zero field they set overrides the corresponding field of base.
// os.ErrNotExist is returned (together with the untouched base) when neither
// file exists.
func ReadOnto[T any](base T, name string) (T, error) {
	found := false
	for _, path := range []string{name, LocalName(name)} {
		override, ok, err := readJSON5[T](path)
		if err != nil {
			return base, err
		}
		if !ok {
			continue
		}
		err = mergo.Merge(&base, override, mergo.WithOverride)
		if err != nil {
			return base, err
		}
		if found {
			slog.Info("merging config with local overrides", "local", path)
		}
		found = true
	}
	if !found {
		return base, os.ErrNotExist
	}
	return base, nil
}

// ReadConfig is ReadOnto with the zero value of T as the base.
func ReadConfig[T any](name string) (T, error) {
	var zero T
	return ReadOnto(zero, name)
}

// ReadRecursively is ReadConfig but it walks up the filesystem from the
// working directory until the root to find a configuration file matching the name.
func ReadRecursively[T any](name string) (T, error) {
	var defaultOut T

	current, err := os.Getwd()
	if err != nil {
		return defaultOut, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return defaultOut, err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return defaultOut, os.ErrNotExist
		}
		current = parent
	}
}
