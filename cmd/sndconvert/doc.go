// Package main hosts the sndconvert CLI entrypoint and command graph.
//
// The root command converts every audio file directly inside one directory to
// the configured target codec and prints an outcome table when the run ends.
// Subcommands scaffold the configuration file and report which external audio
// tools are installed. Conversion logic lives in the internal packages; this
// package only resolves configuration, sets up logging, and renders results.
package main
