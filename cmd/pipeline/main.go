package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/joke-pipeline/internal/application"
	"github.com/eugenenazirov/joke-pipeline/internal/config"
	"github.com/eugenenazirov/joke-pipeline/internal/logging"
)

func main() {
	kingpin.FatalIfError(run(os.Args[1:], os.Stdout), "pipeline")
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("pipeline", "Joke pipeline settings - inspects configuration and prepares data directories")
	root := kingpinApp.Flag("root", "Project root (defaults to PROJECT_ROOT or the nearest go.mod)").String()
	envFile := kingpinApp.Flag("env-file", "Path to the .env file (defaults to <root>/.env)").String()
	overrides := kingpinApp.Flag("set", "Override a setting as KEY=VALUE; repeatable").StringMap()

	showCmd := kingpinApp.Command("show", "Print the resolved settings as YAML with secrets masked")
	initCmd := kingpinApp.Command("init", "Create the data directories")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	settings, err := config.Load(config.Options{
		ProjectRoot: *root,
		EnvFile:     *envFile,
		Overrides:   *overrides,
	})
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	switch command {
	case showCmd.FullCommand():
		return show(settings, stdout)
	case initCmd.FullCommand():
		return initDirs(settings)
	}
	return fmt.Errorf("unknown command %q", command)
}

func show(settings *config.Settings, stdout io.Writer) error {
	out, err := yaml.Marshal(application.Describe(settings))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

func initDirs(settings *config.Settings) error {
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(settings, logger)
	if err != nil {
		logger.Error("failed to prepare data directories", zap.Error(err))
		return err
	}

	for _, dir := range app.Settings().DataDirs() {
		logger.Info("data directory ready", zap.String("path", dir))
	}
	return nil
}
