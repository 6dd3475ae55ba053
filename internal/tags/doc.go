// Package tags extracts audio metadata tags and renders them as encoder
// arguments.
//
// Analyze runs a format's analyzer tool (ogginfo, metaflac, mp3info) and
// parses its textual listing with a LineRule into a Map keyed by lower-cased
// tag name. When the analyzer cannot run, ReadNative reads the tags straight
// from the file. Fields resolves a Map into the fixed slot order encoders
// expect (artist, album, year, track, title) and FlagTable turns those fields
// into command-line flags.
package tags
