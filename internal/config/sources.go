package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Source yields a partial key/value mapping of configuration.
type Source interface {
	Name() string
	Values() (map[string]string, error)
}

type dotenvSource struct {
	path string
}

// DotenvFile reads KEY=VALUE pairs from path without touching the process
// environment. A missing file yields no values.
func DotenvFile(path string) Source {
	return dotenvSource{path: path}
}

func (s dotenvSource) Name() string { return s.path }

func (s dotenvSource) Values() (map[string]string, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat env file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("env file %s is a directory", s.path)
	}

	values, err := godotenv.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("parse env file: %w", err)
	}
	return values, nil
}

type environSource struct{}

// Environ exposes the process environment. Empty variables count as unset.
func Environ() Source {
	return environSource{}
}

func (environSource) Name() string { return "environment" }

func (environSource) Values() (map[string]string, error) {
	environ := os.Environ()
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" || value == "" {
			continue
		}
		values[key] = value
	}
	return values, nil
}

type staticSource struct {
	name   string
	values map[string]string
}

// Static wraps a fixed mapping, typically command-line overrides.
func Static(name string, values map[string]string) Source {
	return staticSource{name: name, values: maps.Clone(values)}
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Values() (map[string]string, error) {
	return maps.Clone(s.values), nil
}

// mergeSources folds sources left to right; later sources win on conflict.
func mergeSources(sources []Source) (map[string]string, error) {
	merged := make(map[string]string)
	for _, src := range sources {
		values, err := src.Values()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Name(), err)
		}
		maps.Copy(merged, values)
	}
	return merged, nil
}
