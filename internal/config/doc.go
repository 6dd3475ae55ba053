// Package config loads, normalizes, and validates sndconvert configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SNDCONVERT_TOOL_DIR
// environment override. The Config type centralizes every knob the CLI and
// the conversion pipeline need: the target codec, the worker count, the
// platform to tool-directory table, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
