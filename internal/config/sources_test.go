package config

import (
	"errors"
	"path/filepath"
	"testing"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Values() (map[string]string, error) {
	return nil, errors.New("boom")
}

func TestMergeSourcesLaterWins(t *testing.T) {
	t.Parallel()

	merged, err := mergeSources([]Source{
		Static("first", map[string]string{"A": "1", "B": "1"}),
		Static("second", map[string]string{"B": "2", "C": "2"}),
	})
	if err != nil {
		t.Fatalf("mergeSources returned error: %v", err)
	}

	want := map[string]string{"A": "1", "B": "2", "C": "2"}
	for k, v := range want {
		if merged[k] != v {
			t.Fatalf("expected %s=%s, got %s", k, v, merged[k])
		}
	}
}

func TestMergeSourcesPropagatesErrors(t *testing.T) {
	t.Parallel()

	if _, err := mergeSources([]Source{failingSource{}}); err == nil {
		t.Fatalf("expected error from failing source")
	}
}

func TestDotenvFileMissingIsEmpty(t *testing.T) {
	t.Parallel()

	values, err := DotenvFile(filepath.Join(t.TempDir(), ".env")).Values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}
}

func TestDotenvFileParsesQuotesAndExports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeEnvFile(t, dir, "export GROQ_MODEL=\"quoted model\"\n# comment\nWHISPER_MODEL=tiny\n")

	values, err := DotenvFile(path).Values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["GROQ_MODEL"] != "quoted model" {
		t.Fatalf("unexpected GROQ_MODEL %q", values["GROQ_MODEL"])
	}
	if values["WHISPER_MODEL"] != "tiny" {
		t.Fatalf("unexpected WHISPER_MODEL %q", values["WHISPER_MODEL"])
	}
}

func TestEnvironSkipsEmptyValues(t *testing.T) {
	t.Setenv("PIPELINE_TEST_SET", "value")
	t.Setenv("PIPELINE_TEST_EMPTY", "")

	values, err := Environ().Values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["PIPELINE_TEST_SET"] != "value" {
		t.Fatalf("expected variable to be read")
	}
	if _, ok := values["PIPELINE_TEST_EMPTY"]; ok {
		t.Fatalf("expected empty variable to be skipped")
	}
}

func TestStaticCopiesInput(t *testing.T) {
	t.Parallel()

	input := map[string]string{"A": "1"}
	src := Static("cli", input)
	input["A"] = "2"

	values, _ := src.Values()
	if values["A"] != "1" {
		t.Fatalf("expected static source to hold its own copy, got %s", values["A"])
	}
}
