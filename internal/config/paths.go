package config

import (
	"os"
	"path/filepath"
)

const dataDirPerm = 0o755

const (
	rawAudioSubdir       = "raw_audio"
	rawTranscriptsSubdir = "raw_transcripts"
	processedJokesSubdir = "processed_jokes"
	scriptsSubdir        = "scripts"
)

// RawAudioDir is where downloaded audio lands.
func (s *Settings) RawAudioDir() string { return s.dataPath(rawAudioSubdir) }

// RawTranscriptsDir is where transcripts are written.
func (s *Settings) RawTranscriptsDir() string { return s.dataPath(rawTranscriptsSubdir) }

// ProcessedJokesDir is where segmented jokes are written.
func (s *Settings) ProcessedJokesDir() string { return s.dataPath(processedJokesSubdir) }

// ScriptsDir holds generated scripts.
func (s *Settings) ScriptsDir() string { return s.dataPath(scriptsSubdir) }

// DataDirs lists every derived data directory.
func (s *Settings) DataDirs() []string {
	return []string{
		s.RawAudioDir(),
		s.RawTranscriptsDir(),
		s.ProcessedJokesDir(),
		s.ScriptsDir(),
	}
}

// EnsureDataDirs creates the data directories and any missing parents.
// Existing directories are left untouched.
func (s *Settings) EnsureDataDirs() error {
	for _, dir := range s.DataDirs() {
		if err := os.MkdirAll(dir, dataDirPerm); err != nil {
			return &FilesystemError{Path: dir, Err: err}
		}
	}
	return nil
}

func (s *Settings) dataPath(sub string) string {
	return filepath.Join(s.ProjectRoot, s.DataDir, sub)
}
