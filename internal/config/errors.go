package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigType indicates a configured value could not be coerced to its field type.
	ErrConfigType = errors.New("config value has the wrong type")
	// ErrFilesystem indicates a data directory could not be created.
	ErrFilesystem = errors.New("data directory cannot be created")
)

// ConfigTypeError reports the key and raw value that failed coercion.
type ConfigTypeError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigTypeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid config value: %v", e.Err)
	}
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Key, e.Err)
}

func (e *ConfigTypeError) Unwrap() error { return e.Err }

func (e *ConfigTypeError) Is(target error) bool { return target == ErrConfigType }

// FilesystemError reports the directory that could not be prepared.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func (e *FilesystemError) Is(target error) bool { return target == ErrFilesystem }
