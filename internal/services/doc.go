// Package services defines shared utilities consumed by the conversion
// pipeline and its external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, worker names, and file
//     paths for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     into run-fatal (missing platform, missing codec, missing directory) and
//     per-file (unsupported source, failed conversion, queue access).
//
// Use these helpers when wiring new pipeline logic so error handling and
// observability stay uniform across workers.
package services
