// Package encoding converts a single audio file to the run's target codec.
//
// Planner decides what to do with a path: skip it (already in the target
// codec, or converted by an earlier run), reject it (unknown or undecodable
// source), or build the decode and encode invocations with the source tags
// mapped onto encoder flags. PipeRunner executes a plan by connecting the
// decoder's standard output to the encoder's standard input through an OS
// pipe, so audio streams between the two tools without passing through this
// process. Job ties the two together and turns exit statuses into an Outcome.
//
// The encoder's exit status decides success. When strict decoding is enabled
// a failing decoder also fails the conversion, and a failed conversion never
// leaves a partial destination behind.
package encoding
