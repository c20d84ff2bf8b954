// Package config resolves the pipeline settings from an optional .env file,
// the process environment and explicit overrides, with precedence:
// Overrides > Environment variables > .env file > Defaults. It also derives
// the data directories shared by the pipeline stages and creates them on
// demand.
package config
