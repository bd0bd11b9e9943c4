// Package app contains the core application logic for the tsonlint tool.
// It defines the App struct, its configuration, and the run lifecycle
// that dispatches to the TSON parser or the reference scanner, decoupled
// from any specific entrypoint like a CLI.
package app
