package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	envFileName   = ".env"
	redactedValue = "***"
)

// Settings holds the typed pipeline configuration. Optional values stay nil
// until explicitly configured.
type Settings struct {
	ProjectRoot string `yaml:"project_root"`
	DataDir     string `yaml:"data_dir" env:"DATA_DIR" envDefault:"data"`

	YtDlpAudioFormat  string `yaml:"yt_dlp_audio_format" env:"YT_DLP_AUDIO_FORMAT" envDefault:"bestaudio/best"`
	YtDlpExtractAudio bool   `yaml:"yt_dlp_extract_audio" env:"YT_DLP_EXTRACT_AUDIO" envDefault:"true"`

	WhisperModel         string `yaml:"whisper_model" env:"WHISPER_MODEL" envDefault:"base"`
	TranscriptionService string `yaml:"transcription_service" env:"TRANSCRIPTION_SERVICE" envDefault:"openai"`

	EmbeddingModelName string `yaml:"embedding_model_name" env:"EMBEDDING_MODEL_NAME" envDefault:"sentence-transformers/paraphrase-multilingual-MiniLM-L12-v2"`

	SupabaseURL        *string `yaml:"supabase_url,omitempty" env:"SUPABASE_URL"`
	SupabaseKey        *string `yaml:"supabase_key,omitempty" env:"SUPABASE_KEY"`
	SupabaseJokesTable string  `yaml:"supabase_jokes_table" env:"SUPABASE_JOKES_TABLE" envDefault:"jokes"`

	GroqAPIKey *string `yaml:"groq_api_key,omitempty" env:"GROQ_API_KEY"`
	GroqModel  string  `yaml:"groq_model" env:"GROQ_MODEL" envDefault:"llama-3.1-70b-versatile"`

	SegmentationModel *string `yaml:"segmentation_model,omitempty" env:"SEGMENTATION_MODEL"`
	MetadataModel     *string `yaml:"metadata_model,omitempty" env:"METADATA_MODEL"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" envDefault:"info"`
}

// Options controls where Load looks for configuration.
type Options struct {
	// ProjectRoot overrides root discovery when set.
	ProjectRoot string
	// EnvFile overrides the default <root>/.env location.
	EnvFile string
	// Overrides take precedence over every other source.
	Overrides map[string]string
}

// Load resolves settings from multiple sources with precedence:
// Overrides > Environment variables > .env file > Defaults
func Load(opts Options) (*Settings, error) {
	root, err := resolveProjectRoot(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = filepath.Join(root, envFileName)
	}

	sources := []Source{DotenvFile(envFile), Environ()}
	if len(opts.Overrides) > 0 {
		sources = append(sources, Static("overrides", opts.Overrides))
	}

	return loadFromSources(root, sources)
}

func loadFromSources(root string, sources []Source) (*Settings, error) {
	values, err := mergeSources(sources)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	err = env.ParseWithOptions(settings, env.Options{
		Environment: values,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(true): func(v string) (interface{}, error) {
				return parseBool(v)
			},
		},
	})
	if err != nil {
		return nil, typeError(err, values)
	}

	settings.ProjectRoot = root
	return settings, nil
}

// SegmentationModelName returns the segmentation model, falling back to GroqModel.
func (s *Settings) SegmentationModelName() string {
	return valueOr(s.SegmentationModel, s.GroqModel)
}

// MetadataModelName returns the metadata model, falling back to GroqModel.
func (s *Settings) MetadataModelName() string {
	return valueOr(s.MetadataModel, s.GroqModel)
}

// Redacted returns a copy safe for display, with configured secrets masked.
func (s *Settings) Redacted() Settings {
	out := *s
	out.SupabaseKey = redact(s.SupabaseKey)
	out.GroqAPIKey = redact(s.GroqAPIKey)
	return out
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func redact(v *string) *string {
	if v == nil {
		return nil
	}
	masked := redactedValue
	return &masked
}

// parseBool accepts the usual on/off spellings, case-insensitively.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", raw)
}

// typeError converts a decoding failure into a ConfigTypeError carrying the
// offending key and raw value.
func typeError(err error, values map[string]string) error {
	var parseErr env.ParseError
	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		for _, e := range aggErr.Errors {
			if errors.As(e, &parseErr) {
				break
			}
		}
	} else {
		errors.As(err, &parseErr)
	}

	if parseErr.Name == "" {
		return &ConfigTypeError{Err: err}
	}

	key := envKey(parseErr.Name)
	return &ConfigTypeError{Key: key, Value: values[key], Err: parseErr.Err}
}

func envKey(fieldName string) string {
	field, ok := reflect.TypeOf(Settings{}).FieldByName(fieldName)
	if !ok {
		return fieldName
	}
	key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
	return key
}
