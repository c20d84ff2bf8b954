package config

import "sync"

var (
	defaultMu       sync.Mutex
	defaultSettings *Settings
)

// Get returns the process-wide settings. The first successful call loads
// them with default options and creates the data directories; later calls
// return the same instance. Failed attempts are not cached.
func Get() (*Settings, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSettings != nil {
		return defaultSettings, nil
	}

	settings, err := Load(Options{})
	if err != nil {
		return nil, err
	}
	if err := settings.EnsureDataDirs(); err != nil {
		return nil, err
	}

	defaultSettings = settings
	return defaultSettings, nil
}
