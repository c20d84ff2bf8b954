// Package application wires the loaded settings into the pipeline. Settings
// are loaded once at program start and handed to consumers explicitly
// through App rather than fetched from package-level state.
package application
