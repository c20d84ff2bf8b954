package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/joke-pipeline/internal/config"
)

// App carries the settings shared by the pipeline stages.
type App struct {
	settings *config.Settings
	logger   *zap.Logger
}

// View is the display form of the settings: secrets masked and the derived
// directories resolved.
type View struct {
	Settings          config.Settings `yaml:"settings"`
	SegmentationModel string          `yaml:"effective_segmentation_model"`
	MetadataModel     string          `yaml:"effective_metadata_model"`
	Directories       Directories     `yaml:"directories"`
}

// Directories lists the derived data directories.
type Directories struct {
	RawAudio       string `yaml:"raw_audio"`
	RawTranscripts string `yaml:"raw_transcripts"`
	ProcessedJokes string `yaml:"processed_jokes"`
	Scripts        string `yaml:"scripts"`
}

// New prepares the data directories and returns an App bound to settings.
func New(settings *config.Settings, logger *zap.Logger) (*App, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := settings.EnsureDataDirs(); err != nil {
		return nil, fmt.Errorf("prepare data directories: %w", err)
	}

	app := &App{settings: settings, logger: logger}
	app.logStartup()
	return app, nil
}

// Settings returns the settings the App was built with.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Describe returns the redacted view of the active settings.
func (a *App) Describe() View {
	return Describe(a.settings)
}

// Describe builds the redacted view without preparing any directories.
func Describe(s *config.Settings) View {
	return View{
		Settings:          s.Redacted(),
		SegmentationModel: s.SegmentationModelName(),
		MetadataModel:     s.MetadataModelName(),
		Directories: Directories{
			RawAudio:       s.RawAudioDir(),
			RawTranscripts: s.RawTranscriptsDir(),
			ProcessedJokes: s.ProcessedJokesDir(),
			Scripts:        s.ScriptsDir(),
		},
	}
}

func (a *App) logStartup() {
	s := a.settings
	a.logger.Info("settings loaded",
		zap.String("project_root", s.ProjectRoot),
		zap.String("data_dir", s.DataDir),
		zap.String("transcription_service", s.TranscriptionService),
		zap.String("whisper_model", s.WhisperModel),
		zap.String("groq_model", s.GroqModel),
		zap.String("segmentation_model", s.SegmentationModelName()),
		zap.String("metadata_model", s.MetadataModelName()),
		zap.Bool("supabase_configured", s.SupabaseURL != nil && s.SupabaseKey != nil),
		zap.Bool("groq_key_set", s.GroqAPIKey != nil),
	)
	for _, dir := range s.DataDirs() {
		a.logger.Debug("data directory ready", zap.String("path", dir))
	}
}
